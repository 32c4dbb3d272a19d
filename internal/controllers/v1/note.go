package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/notekeeper/backend/internal/auth"
	"github.com/notekeeper/backend/internal/httputil"
	"github.com/notekeeper/backend/internal/models"
)

// RegisterNoteRoutes registers the routes for notes with
// the RouterGroup that is passed.
func RegisterNoteRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsNoteList)
		r.GET("", GetNotes)
		r.POST("", CreateNote)
	}

	// Note with ID
	{
		r.OPTIONS("/:id", OptionsNoteDetail)
		r.PATCH("/:id", UpdateNote)
		r.PUT("/:id", UpdateNote)
		r.DELETE("/:id", DeleteNote)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notes
// @Success		204
// @Router			/v1/notes [options]
func OptionsNoteList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notes
// @Success		204
// @Param			id	path	string	true	"ID of the note"
// @Router			/v1/notes/{id} [options]
func OptionsNoteDetail(c *gin.Context) {
	httputil.OptionsUpdateDelete(c)
}

// @Summary		List notes
// @Description	Returns the caller's notes, most recently updated first, filtered by the query parameters
// @Tags			Notes
// @Produce		json
// @Success		200	{array}		models.Note
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/notes [get]
// @Param			q			query	string	false	"Search for this text"
// @Param			searchIn	query	string	false	"Comma-separated fields to search in: title, content, category. Defaults to all."
// @Param			categoryIds	query	string	false	"Restrict to this comma-separated list of category IDs"
// @Param			categories	query	string	false	"Restrict to this comma-separated list of category names"
// @Param			category	query	string	false	"Filter by a single category ID"
func GetNotes(c *gin.Context) {
	user := auth.UserFromContext(c)

	var filter NoteQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	// Get the fields that we are filtering for
	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Preload("Category").
		Order("notes.updated_at DESC").
		Where("notes.user_id = ?", user.ID).
		Where(&filterModel, queryFields...)

	// The category name restriction and the category name search both need
	// the category row. Notes without a category survive the join.
	names := splitCSV(filter.Categories)
	search := strings.TrimSpace(filter.Search)
	fields := searchFields(filter.SearchIn)

	if len(names) > 0 || (search != "" && fields["category"]) {
		q = q.Joins("LEFT JOIN categories ON categories.id = notes.category_id")
	}

	// Category restriction: IDs and names both narrow the result
	if categoryIDs := splitCSV(filter.CategoryIDs); len(categoryIDs) > 0 {
		q = q.Where("notes.category_id IN ?", categoryIDs)
	}

	if len(names) > 0 {
		q = q.Where("categories.name IN ?", names)
	}

	// Text search: a disjunction over the searched fields. An empty search
	// term or an empty field set means no text filter, not "match nothing".
	if search != "" {
		if condition := searchFilter(models.DB, search, fields); condition != nil {
			q = q.Where(condition)
		}
	}

	notes := make([]models.Note, 0)
	err := q.Find(&notes).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, notes)
}

// @Summary		Create note
// @Description	Creates a new note for the caller
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Note
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			note	body		NoteEditable	true	"Note"
// @Router			/v1/notes [post]
func CreateNote(c *gin.Context) {
	user := auth.UserFromContext(c)

	var editable NoteEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	note := editable.model(user.ID)
	err = models.DB.Create(&note).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, note)
}

// @Summary		Update note
// @Description	Updates an existing note. Only values to be updated need to be specified, a null categoryId clears the category.
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Note
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID of the note"
// @Param			note	body		NoteEditable	true	"Note"
// @Router			/v1/notes/{id} [patch]
func UpdateNote(c *gin.Context) {
	user := auth.UserFromContext(c)

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var note models.Note
	err = models.DB.First(&note, "id = ? AND user_id = ?", uri.ID.UUID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, NoteEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var data NoteEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&note).Select("", updateFields...).Updates(data.model(user.ID)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, note)
}

// @Summary		Delete note
// @Description	Deletes a note
// @Tags			Notes
// @Produce		json
// @Success		200	{object}	OkResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the note"
// @Router			/v1/notes/{id} [delete]
func DeleteNote(c *gin.Context) {
	user := auth.UserFromContext(c)

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var note models.Note
	err = models.DB.First(&note, "id = ? AND user_id = ?", uri.ID.UUID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&note).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, OkResponse{Ok: true})
}
