package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/models"
)

type teamService struct {
	db       *gorm.DB
	activity ActivityServicer
}

// NewTeamService creates a new team service instance.
func NewTeamService(db *gorm.DB, activity ActivityServicer) TeamServicer {
	return &teamService{db: db, activity: activity}
}

// CreateTeam creates a team owned by the user and makes them a member.
// A user can belong to one team at a time.
func (s *teamService) CreateTeam(userID, name string) (*models.Team, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if user.TeamID != nil {
		return nil, apperrors.ErrAlreadyInTeam
	}

	team := &models.Team{Name: name, OwnerID: userID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("team_id", team.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(team.ID, userID, models.EntityTeam, team.ID, models.ActionCreated, nil, map[string]any{
		"name": team.Name,
	})
	return team, nil
}

// GetTeam returns the user's team with its members. Users can only see
// the team they belong to.
func (s *teamService) GetTeam(userID, teamID string) (*models.Team, error) {
	var team models.Team
	if err := s.db.Preload("Members").Where("id = ?", teamID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !teamHasMember(&team, userID) {
		return nil, apperrors.ErrCrossTeamAccess
	}
	return &team, nil
}

// UpdateTeam renames a team. Only the owner may do this.
func (s *teamService) UpdateTeam(userID, teamID, name string) (*models.Team, error) {
	var team models.Team
	if err := s.db.Where("id = ?", teamID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if team.OwnerID != userID {
		return nil, apperrors.ErrCrossTeamAccess
	}

	oldValues := map[string]any{"name": team.Name}
	team.Name = name
	if err := s.db.Save(&team).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.activity.Record(team.ID, userID, models.EntityTeam, team.ID, models.ActionUpdated, oldValues, map[string]any{
		"name": team.Name,
	})
	return &team, nil
}

func teamHasMember(team *models.Team, userID string) bool {
	if team.OwnerID == userID {
		return true
	}
	for _, m := range team.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
