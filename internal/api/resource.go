package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawhaven/shelter-backend/internal/service"
)

// record constrains the pointer type of a resource entity.
type record[T any] interface {
	*T
	GetID() uint
	SetID(id uint)
}

// ResourceHandler serves the uniform CRUD contract for one entity type:
// list, create, read, partial update and delete, all under one collection
// path. Validation and cascading deletes are injected per entity at setup.
type ResourceHandler[T any, PT record[T]] struct {
	db       *gorm.DB
	name     string
	validate service.Validator[T]
	delete   service.Deleter[T]
	preload  []string
}

// NewResource builds a handler for one entity. name is the singular,
// human-readable entity name used in not-found messages. del may be nil
// for entities without dependents. preload lists associations embedded in
// read responses.
func NewResource[T any, PT record[T]](db *gorm.DB, name string, validate service.Validator[T], del service.Deleter[T], preload ...string) *ResourceHandler[T, PT] {
	return &ResourceHandler[T, PT]{
		db:       db,
		name:     name,
		validate: validate,
		delete:   del,
		preload:  preload,
	}
}

// Register mounts the five CRUD routes on rg under path.
func (h *ResourceHandler[T, PT]) Register(rg *gin.RouterGroup, path string) {
	grp := rg.Group("/" + path)
	{
		grp.GET("", h.List)
		grp.POST("", h.Create)
		grp.GET("/:id", h.Get)
		grp.PUT("/:id", h.Update)
		grp.PATCH("/:id", h.Update)
		grp.DELETE("/:id", h.Delete)
	}
}

func (h *ResourceHandler[T, PT]) List(c *gin.Context) {
	var recs []T
	if err := h.query().Find(&recs).Error; err != nil {
		respondErrors(c, http.StatusInternalServerError, "failed to list "+h.name+" records")
		return
	}
	if recs == nil {
		recs = []T{}
	}
	c.JSON(http.StatusOK, recs)
}

func (h *ResourceHandler[T, PT]) Get(c *gin.Context) {
	rec, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ResourceHandler[T, PT]) Create(c *gin.Context) {
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondErrors(c, http.StatusBadRequest, err.Error())
		return
	}
	// Identifiers are assigned by the store, never by the caller.
	PT(&rec).SetID(0)

	if errs := h.validate(h.db, &rec); len(errs) > 0 {
		respondErrors(c, http.StatusUnprocessableEntity, errs...)
		return
	}
	if err := h.db.Omit(clause.Associations).Create(&rec).Error; err != nil {
		respondErrors(c, http.StatusInternalServerError, "failed to create "+h.name)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *ResourceHandler[T, PT]) Update(c *gin.Context) {
	rec, ok := h.find(c)
	if !ok {
		return
	}
	id := PT(rec).GetID()

	// Binding onto the loaded record leaves absent fields untouched, which
	// gives partial-update semantics for both PUT and PATCH.
	if err := c.ShouldBindJSON(rec); err != nil {
		respondErrors(c, http.StatusBadRequest, err.Error())
		return
	}
	PT(rec).SetID(id)

	if errs := h.validate(h.db, rec); len(errs) > 0 {
		respondErrors(c, http.StatusUnprocessableEntity, errs...)
		return
	}
	if err := h.db.Omit(clause.Associations).Save(rec).Error; err != nil {
		respondErrors(c, http.StatusInternalServerError, "failed to update "+h.name)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ResourceHandler[T, PT]) Delete(c *gin.Context) {
	rec, ok := h.find(c)
	if !ok {
		return
	}

	var err error
	if h.delete != nil {
		err = h.delete(h.db, rec)
	} else {
		err = h.db.Delete(rec).Error
	}
	if err != nil {
		respondErrors(c, http.StatusInternalServerError, "failed to delete "+h.name)
		return
	}
	c.Status(http.StatusNoContent)
}

// find loads the record addressed by the :id param, writing the error
// response itself when the id is malformed or no record matches.
func (h *ResourceHandler[T, PT]) find(c *gin.Context) (*T, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondErrors(c, http.StatusNotFound, h.name+" not found")
		return nil, false
	}

	var rec T
	if err := h.query().First(&rec, "id = ?", uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondErrors(c, http.StatusNotFound, h.name+" not found")
		} else {
			respondErrors(c, http.StatusInternalServerError, fmt.Sprintf("failed to load %s %d", h.name, id))
		}
		return nil, false
	}
	return &rec, true
}

func (h *ResourceHandler[T, PT]) query() *gorm.DB {
	q := h.db
	for _, p := range h.preload {
		q = q.Preload(p)
	}
	return q
}
