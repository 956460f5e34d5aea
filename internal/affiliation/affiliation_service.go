package affiliation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/shared/contextutil"
	"github.com/udoykumar/assets-verse-server/internal/user"
)

// UserDirectory resolves affiliated employee emails to user documents.
type UserDirectory interface {
	FindByEmails(ctx context.Context, emails []string) ([]user.User, error)
}

// AssignedCounter answers how many assets an employee currently holds.
type AssignedCounter interface {
	CountByEmployee(ctx context.Context, email string) (int64, error)
}

//go:generate mockgen -source=affiliation_service.go -destination=mock/affiliation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAffiliationRequest) (CreateAffiliationResponse, error)
	ByEmployee(ctx context.Context, email string) ([]Affiliation, error)
	Team(ctx context.Context, hrEmail string) ([]TeamMember, error)
	Remove(ctx context.Context, employeeEmail, hrEmail string) (DeleteSummary, error)
}

type service struct {
	repo     Repository
	users    UserDirectory
	assigned AssignedCounter
	logger   *zap.Logger
}

func NewService(repo Repository, users UserDirectory, assigned AssignedCounter, logger ...*zap.Logger) Service {
	l := zap.L().Named("affiliation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("affiliation.service")
	}
	return &service{repo: repo, users: users, assigned: assigned, logger: l}
}

// Create checks the (employeeEmail, hrEmail) pair before inserting.
// The check is advisory: two concurrent requests can both pass it.
// Acceptable at this system's scale; see the repo pre-check note.
func (s *service) Create(ctx context.Context, req CreateAffiliationRequest) (CreateAffiliationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	existing, err := s.repo.FindPair(ctx, req.EmployeeEmail, req.HREmail)
	if err != nil {
		s.logger.Error("affiliation pair lookup failed", zap.String("request_id", rid), zap.Error(err))
		return CreateAffiliationResponse{}, err
	}
	if existing != nil {
		return CreateAffiliationResponse{Message: "Already affiliated", Inserted: false}, nil
	}

	a := &Affiliation{
		EmployeeEmail:   req.EmployeeEmail,
		EmployeeName:    req.EmployeeName,
		HREmail:         req.HREmail,
		CompanyName:     req.CompanyName,
		AffiliationDate: time.Now(),
		Status:          StatusActive,
	}

	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		s.logger.Error("affiliation persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateAffiliationResponse{}, err
	}

	s.logger.Info("affiliation created",
		zap.String("request_id", rid),
		zap.String("employee_email", req.EmployeeEmail),
		zap.String("hr_email", req.HREmail),
	)
	return CreateAffiliationResponse{Inserted: true, InsertedID: id.Hex()}, nil
}

func (s *service) ByEmployee(ctx context.Context, email string) ([]Affiliation, error) {
	affiliations, err := s.repo.FindByEmployee(ctx, email)
	if err != nil {
		s.logger.Error("affiliations lookup failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if affiliations == nil {
		affiliations = []Affiliation{}
	}
	return affiliations, nil
}

// Team builds the HR roster: affiliations, then the matching user
// documents, then one count query per member. Team sizes are capped
// by the package limit, so the per-member queries stay small.
func (s *service) Team(ctx context.Context, hrEmail string) ([]TeamMember, error) {
	affiliations, err := s.repo.FindByHR(ctx, hrEmail)
	if err != nil {
		s.logger.Error("team affiliations lookup failed", zap.String("hr_email", hrEmail), zap.Error(err))
		return nil, err
	}
	if len(affiliations) == 0 {
		return []TeamMember{}, nil
	}

	emails := make([]string, len(affiliations))
	for i, a := range affiliations {
		emails[i] = a.EmployeeEmail
	}

	members, err := s.users.FindByEmails(ctx, emails)
	if err != nil {
		s.logger.Error("team users lookup failed", zap.String("hr_email", hrEmail), zap.Error(err))
		return nil, err
	}

	team := make([]TeamMember, 0, len(members))
	for _, member := range members {
		count, err := s.assigned.CountByEmployee(ctx, member.Email)
		if err != nil {
			s.logger.Error("team asset count failed", zap.String("email", member.Email), zap.Error(err))
			return nil, err
		}
		team = append(team, TeamMember{User: member, AssetCount: count})
	}

	return team, nil
}

func (s *service) Remove(ctx context.Context, employeeEmail, hrEmail string) (DeleteSummary, error) {
	summary, err := s.repo.DeletePair(ctx, employeeEmail, hrEmail)
	if err != nil {
		s.logger.Error("affiliation remove failed",
			zap.String("employee_email", employeeEmail),
			zap.String("hr_email", hrEmail),
			zap.Error(err),
		)
		return DeleteSummary{}, err
	}

	s.logger.Info("affiliation removed",
		zap.String("employee_email", employeeEmail),
		zap.String("hr_email", hrEmail),
	)
	return summary, nil
}
