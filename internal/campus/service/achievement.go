package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/idx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type CreateAchievementInput struct {
	Name        string `json:"name" validate:"notblank,max=200"`
	UserID      string `json:"user_id" validate:"omitempty,ulid"`
	Title       string `json:"title" validate:"notblank,max=200"`
	Description string `json:"description" validate:"max=10000"`
	Date        string `json:"date"`
	Category    string `json:"category" validate:"max=100"`
	Department  string `json:"department"`
	DocumentURL string `json:"document_url" validate:"omitempty,url,max=2048"`
	Type        string `json:"type" validate:"notblank,max=50"`
}

type AchievementQuery struct {
	Type       string
	Department string
	Category   string
}

type AchievementService struct {
	Store   store.Store
	Catalog *catalog.Catalog
}

func (s *AchievementService) CreateAchievement(ctx context.Context, p domain.Principal, in CreateAchievementInput) (domain.Achievement, error) {
	log := slogx.FromContext(ctx)

	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if err := validateStruct(in); err != nil {
		return domain.Achievement{}, err
	}
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return domain.Achievement{}, invalidField("date", "Invalid date")
	}
	deptCode := in.Department
	if strings.TrimSpace(deptCode) == "" {
		deptCode = p.Department
	}
	dept, err := s.Catalog.Lookup(deptCode)
	if err != nil {
		return domain.Achievement{}, invalidField("department", "Invalid department")
	}

	if in.UserID != "" {
		if _, err := s.Store.Users().GetUserByID(ctx, in.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Achievement{}, invalidField("user_id", "Unknown user")
			}
			return domain.Achievement{}, err
		}
	}

	a := domain.Achievement{
		ID:          idx.New().String(),
		Name:        strings.TrimSpace(in.Name),
		UserID:      in.UserID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        date,
		Category:    strings.TrimSpace(in.Category),
		Department:  dept.Code,
		DocumentURL: in.DocumentURL,
		Type:        in.Type,
	}
	if err := s.Store.Achievements().CreateAchievement(ctx, a); err != nil {
		log.Error("failed to create achievement", slog.Any("error", err))
		return domain.Achievement{}, err
	}
	log.Info("achievement recorded", slog.String("achievement_id", a.ID), slog.String("created_by", p.UserID))
	return s.GetAchievement(ctx, a.ID)
}

func (s *AchievementService) GetAchievement(ctx context.Context, id string) (domain.Achievement, error) {
	a, err := s.Store.Achievements().GetAchievementByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Achievement{}, ErrAchievementNotFound
		}
		return domain.Achievement{}, err
	}
	return a, nil
}

func (s *AchievementService) ListAchievements(ctx context.Context, q AchievementQuery) ([]domain.Achievement, error) {
	f := store.AchievementFilter{
		Type:     strings.ToLower(strings.TrimSpace(q.Type)),
		Category: strings.TrimSpace(q.Category),
	}
	if q.Department != "" {
		dept, err := s.Catalog.Lookup(q.Department)
		if err != nil {
			return nil, invalidField("department", "Invalid department")
		}
		f.Department = dept.Code
	}
	return s.Store.Achievements().ListAchievements(ctx, f)
}

// AchievementsInYear lists achievements dated inside an academic year.
func (s *AchievementService) AchievementsInYear(ctx context.Context, year domain.AcademicYear) ([]domain.Achievement, error) {
	from, to := year.First(), year.Last()
	return s.Store.Achievements().ListAchievements(ctx, store.AchievementFilter{From: &from, To: &to})
}
