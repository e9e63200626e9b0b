package models

// GetID / SetID give the generic REST layer uniform access to primary keys
// without runtime reflection.

func (p *Pet) GetID() uint { return p.ID }
func (p *Pet) SetID(id uint) { p.ID = id }

func (l *Location) GetID() uint { return l.ID }
func (l *Location) SetID(id uint) { l.ID = id }

func (f *Food) GetID() uint { return f.ID }
func (f *Food) SetID(id uint) { f.ID = id }

func (m *Medication) GetID() uint { return m.ID }
func (m *Medication) SetID(id uint) { m.ID = id }

func (v *Vaccine) GetID() uint { return v.ID }
func (v *Vaccine) SetID(id uint) { v.ID = id }

func (i *Injury) GetID() uint { return i.ID }
func (i *Injury) SetID(id uint) { i.ID = id }

func (c *Check) GetID() uint { return c.ID }
func (c *Check) SetID(id uint) { c.ID = id }

func (f *Frequency) GetID() uint { return f.ID }
func (f *Frequency) SetID(id uint) { f.ID = id }

func (pf *PetFood) GetID() uint { return pf.ID }
func (pf *PetFood) SetID(id uint) { pf.ID = id }

func (ms *MedicationSchedule) GetID() uint { return ms.ID }
func (ms *MedicationSchedule) SetID(id uint) { ms.ID = id }

func (vs *VaccinationSchedule) GetID() uint { return vs.ID }
func (vs *VaccinationSchedule) SetID(id uint) { vs.ID = id }

func (cs *ChecksSchedule) GetID() uint { return cs.ID }
func (cs *ChecksSchedule) SetID(id uint) { cs.ID = id }

func (ir *InjuryReport) GetID() uint { return ir.ID }
func (ir *InjuryReport) SetID(id uint) { ir.ID = id }

func (pa *PetAdoption) GetID() uint { return pa.ID }
func (pa *PetAdoption) SetID(id uint) { pa.ID = id }
