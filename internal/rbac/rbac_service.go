package rbac

import (
	"fmt"
	"sort"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
	Permissions(role string) ([]string, error)
}

type service struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

// NewService builds an enforcer over the static role policy.
func NewService(logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}

	if _, err := e.AddPolicies(rolePolicies); err != nil {
		return nil, fmt.Errorf("rbac load policies: %w", err)
	}
	if _, err := e.AddGroupingPolicies(roleInheritance); err != nil {
		return nil, fmt.Errorf("rbac load role inheritance: %w", err)
	}

	l.Info("rbac policy loaded",
		zap.Int("policies", len(rolePolicies)),
		zap.Int("inheritance", len(roleInheritance)),
	)

	return &service{enforcer: e, logger: l}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	if role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Permissions lists "resource:action" pairs granted to role, including inherited ones.
func (s *service) Permissions(role string) ([]string, error) {
	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(perms))
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		key := p[1] + ":" + p[2]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out, nil
}
