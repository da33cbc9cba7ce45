// Package authorize maps roles to the operations they may perform using casbin.
package authorize

import (
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/pkg/errors"

	"clinic/config"
	"clinic/internal/domain/entity"
	"clinic/internal/domain/service"
)

const modelText = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.act == p.act
`

// DefaultPolicy is the role to operation table used when no policy file is configured.
const DefaultPolicy = `
p, manager, CreatePatient
p, manager, ListOwnPatients
p, manager, ViewOwnPatientDetail
p, manager, DeleteOwnPatient
p, doctor, ListAllPatients
p, doctor, CreateVisit
p, doctor, ViewPatientHistory
p, doctor, ViewOwnVisits
`

type casbinPolicy struct {
	enforcer *casbin.Enforcer
}

// NewCasbinPolicy builds the policy from cfg.Access.PolicyPath, or DefaultPolicy when the path is empty.
func NewCasbinPolicy(cfg *config.Config) (service.AccessPolicy, error) {
	var adapter persist.Adapter
	if cfg != nil && cfg.Access != nil && strings.TrimSpace(cfg.Access.PolicyPath) != "" {
		adapter = fileadapter.NewAdapter(cfg.Access.PolicyPath)
	} else {
		adapter = stringadapter.NewAdapter(DefaultPolicy)
	}

	return newCasbinPolicy(adapter)
}

func newCasbinPolicy(adapter persist.Adapter) (*casbinPolicy, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access model")
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build access enforcer")
	}

	return &casbinPolicy{enforcer: enforcer}, nil
}

func (p *casbinPolicy) Allowed(role entity.Role, op entity.Operation) (bool, error) {
	// An unassigned role never reaches the enforcer so a policy file cannot grant it anything.
	if !role.IsAssignable() {
		return false, nil
	}

	allowed, err := p.enforcer.Enforce(role.String(), string(op))
	if err != nil {
		return false, errors.Wrapf(err, "enforce %s/%s", role, op)
	}

	return allowed, nil
}
