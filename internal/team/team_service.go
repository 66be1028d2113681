package team

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	teamerrors "github.com/Webdevrishabh/ELMS/internal/team/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	TeamAllKey   = "teams:all"
	teamCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
	GetAll(ctx context.Context) ([]TeamResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    redis.Cmdable
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService caches the team list in rdb when it is not nil.
func NewService(db *sql.DB, repo Repository, rdb redis.Cmdable, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return TeamResponse{}, teamerrors.ErrTeamNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TeamResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t := &Team{ID: uuid.New(), Name: name}
	if err := qtx.Create(ctx, t); err != nil {
		if apperror.IsUniqueViolation(err, "uq_teams_name") {
			return TeamResponse{}, teamerrors.ErrTeamAlreadyExists
		}
		s.logger.Error("create team failed", zap.String("name", name), zap.Error(err))
		return TeamResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TeamResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, TeamAllKey).Err(); err != nil {
			s.logger.Warn("team cache invalidation failed", zap.Error(err))
		}
	}

	s.logger.Info("create team success", zap.String("team_id", t.ID.String()))
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TeamResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, TeamAllKey).Result()
		if err == nil {
			var resp []TeamResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(TeamAllKey, func() (any, error) {
		teams, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(teams)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, TeamAllKey, data, teamCacheTTL).Err(); err != nil {
					s.logger.Warn("team cache store failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]TeamResponse), nil
}

func mapToResponse(t Team) TeamResponse {
	return TeamResponse{
		ID:   t.ID.String(),
		Name: t.Name,
	}
}

func mapToListResponse(teams []Team) []TeamResponse {
	res := make([]TeamResponse, len(teams))
	for i, t := range teams {
		res[i] = mapToResponse(t)
	}
	return res
}
