package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/logger"
	"bucketwise/internal/models"
)

type activityService struct {
	db *gorm.DB
}

// NewActivityService creates a new activity service instance.
func NewActivityService(db *gorm.DB) ActivityServicer {
	return &activityService{db: db}
}

// Record writes one activity log row for a mutation. Failures are logged
// and swallowed: the audit trail must never fail the mutation it describes.
func (s *activityService) Record(teamID, userID string, kind models.EntityKind, entityID string, action models.ActivityAction, oldValues, newValues map[string]any) {
	entry := models.ActivityLog{
		TeamID:     teamID,
		UserID:     userID,
		Action:     action,
		EntityKind: kind,
		EntityID:   entityID,
	}
	if oldValues != nil {
		if raw, err := json.Marshal(oldValues); err == nil {
			entry.OldValues = string(raw)
		}
	}
	if newValues != nil {
		if raw, err := json.Marshal(newValues); err == nil {
			entry.NewValues = string(raw)
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		logger.Get().Errorw("failed to record activity",
			"team_id", teamID,
			"entity_kind", kind,
			"action", action,
			"error", err.Error(),
		)
	}
}

// GetTeamActivity returns the most recent activity entries for a team,
// newest first, each with a human-readable description line.
func (s *activityService) GetTeamActivity(teamID string, limit int) ([]ActivityEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows []models.ActivityLog
	if err := s.db.Preload("User").
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entry := ActivityEntry{
			ID:          row.ID,
			Description: describeActivity(row),
			Action:      row.Action,
			EntityKind:  row.EntityKind,
			Timestamp:   row.CreatedAt,
		}
		if row.NewValues != "" {
			var details map[string]any
			if err := json.Unmarshal([]byte(row.NewValues), &details); err == nil {
				entry.Details = details
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

var entityLabels = map[models.EntityKind]string{
	models.EntityTeam:         "team",
	models.EntityBudgetPlan:   "budget plan",
	models.EntityBucket:       "bucket",
	models.EntityLineItem:     "line item",
	models.EntityIncomeSource: "income source",
	models.EntityExpense:      "expense",
}

var actionVerbs = map[models.ActivityAction]string{
	models.ActionCreated:    "created",
	models.ActionUpdated:    "updated",
	models.ActionDeleted:    "deleted",
	models.ActionRolledOver: "rolled over",
}

func describeActivity(row models.ActivityLog) string {
	actor := "Someone"
	if row.User != nil && row.User.FirstName != "" {
		actor = row.User.FirstName
	}
	label, ok := entityLabels[row.EntityKind]
	if !ok {
		label = string(row.EntityKind)
	}
	verb, ok := actionVerbs[row.Action]
	if !ok {
		verb = string(row.Action)
	}
	return fmt.Sprintf("%s %s a %s", actor, verb, label)
}
