package controllers

import (
	"context"
	"net/http"
	"strconv"

	"civicreport-be/models"
	"civicreport-be/supabase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// GetCategories returns the full category reference table.
func GetCategories(sb *supabase.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.Category
		if err := sb.Select(c.Request.Context(), "categories", "category_id,category_name", nil, &rows); err != nil {
			respondUpstreamError(c, err)
			return
		}
		if rows == nil {
			rows = []models.Category{}
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GetDepartments returns the full department reference table.
func GetDepartments(sb *supabase.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.Department
		if err := sb.Select(c.Request.Context(), "departments", "department_id,department_name", nil, &rows); err != nil {
			respondUpstreamError(c, err)
			return
		}
		if rows == nil {
			rows = []models.Department{}
		}
		c.JSON(http.StatusOK, rows)
	}
}

// CreateIssue files a new issue: the issue row, one initial history entry,
// then one image row per supplied URL, in order. If a later step fails the
// earlier writes are rolled back with compensating deletes.
func CreateIssue(sb *supabase.Client, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Title           string   `json:"title" binding:"required,max=200"`
			Description     string   `json:"description" binding:"required,max=1000"`
			CategoryID      int64    `json:"category_id" binding:"required"`
			DepartmentID    int64    `json:"department_id" binding:"required"`
			LocationID      int64    `json:"location_id" binding:"required"`
			UserID          int64    `json:"user_id" binding:"required"`
			CurrentStatusID int64    `json:"current_status_id" binding:"required"`
			Remarks         string   `json:"remarks"`
			Images          []string `json:"images"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()

		var created []models.Issue
		err := sb.Insert(ctx, "issue", models.Issue{
			Title:           input.Title,
			Description:     input.Description,
			CategoryID:      input.CategoryID,
			DepartmentID:    input.DepartmentID,
			LocationID:      input.LocationID,
			UserID:          input.UserID,
			CurrentStatusID: input.CurrentStatusID,
		}, &created)
		if err != nil {
			respondUpstreamError(c, err)
			return
		}
		if len(created) == 0 {
			c.JSON(http.StatusBadGateway, gin.H{"error": "no row returned for new issue"})
			return
		}
		issueID := created[0].IssueID

		// Initial history entry; updated_by stays null for citizen filings.
		err = sb.Insert(ctx, "issue_history", models.IssueHistory{
			IssueID:  issueID,
			StatusID: input.CurrentStatusID,
			Remarks:  input.Remarks,
		}, nil)
		if err != nil {
			rollbackIssue(ctx, sb, log, issueID)
			respondUpstreamError(c, err)
			return
		}

		for _, imageURL := range input.Images {
			err = sb.Insert(ctx, "issue_image", models.IssueImage{
				IssueID:  issueID,
				ImageURL: imageURL,
			}, nil)
			if err != nil {
				rollbackIssue(ctx, sb, log, issueID)
				respondUpstreamError(c, err)
				return
			}
		}

		c.JSON(http.StatusCreated, gin.H{"ok": true, "issue_id": issueID})
	}
}

// rollbackIssue deletes whatever part of an issue write landed before a
// failure. Best effort: delete failures are logged and the caller still
// sees the original error.
func rollbackIssue(ctx context.Context, sb *supabase.Client, log zerolog.Logger, issueID int64) {
	id := strconv.FormatInt(issueID, 10)
	for _, table := range []string{"issue_image", "issue_history", "issue"} {
		if err := sb.Delete(ctx, table, supabase.Filters{"issue_id": id}); err != nil {
			log.Error().Err(err).Str("table", table).Int64("issue_id", issueID).Msg("rollback delete failed")
		}
	}
}
