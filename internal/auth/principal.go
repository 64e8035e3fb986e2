package auth

import (
	"lciportal_backend/internal/models"
	"lciportal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Principal is the resolved identity behind a bearer credential: either the
// synthetic administrator or a client backed by a User record.
type Principal struct {
	ID       string
	Email    string
	FullName string
	Role     models.UserRole

	// User is set for client principals only; the administrator is
	// synthetic and has no backing record.
	User *models.User
}

func (p *Principal) IsAdmin() bool {
	return p.Role == models.UserRoleAdmin
}

// UserLoader is the slice of the user repository the resolver needs.
type UserLoader interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
}

// ResolverConfig carries the resolver's policy knobs explicitly; nothing is
// read from ambient environment state.
type ResolverConfig struct {
	AdminEmail          string
	AdminName           string
	RequireApprovedUser bool
}

// PrincipalResolver turns an opaque bearer credential into a Principal.
// Decode order is fixed: the administrative bundle is tried first (cheap,
// no I/O), then the signed user token.
type PrincipalResolver struct {
	tokens *TokenManager
	users  UserLoader
	cfg    ResolverConfig
}

func NewPrincipalResolver(tokens *TokenManager, users UserLoader, cfg ResolverConfig) *PrincipalResolver {
	return &PrincipalResolver{
		tokens: tokens,
		users:  users,
		cfg:    cfg,
	}
}

// Resolve verifies the credential and produces a principal. A missing token
// is reported distinctly from an invalid one; the caller handles that case
// before dispatching here.
func (r *PrincipalResolver) Resolve(db *gorm.DB, token string) (*Principal, *apperrors.AppError) {
	// 1. Administrative bundle. A decodable bundle whose role claim is not
	// "admin" never grants anything; it falls through to JWT verification.
	if bundle, ok := DecodeAdminBundle(token); ok && bundle.Role == string(models.UserRoleAdmin) {
		principal := &Principal{
			ID:       "admin",
			Email:    r.cfg.AdminEmail,
			FullName: r.cfg.AdminName,
			Role:     models.UserRoleAdmin,
		}
		if bundle.Email != "" {
			principal.Email = bundle.Email
		}
		if bundle.FullName != "" {
			principal.FullName = bundle.FullName
		}
		return principal, nil
	}

	// 2. Signed user token.
	claims, err := r.tokens.Parse(token)
	if err != nil {
		if err == ErrTokenExpired {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	user, err := r.users.FindByID(db, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken.WithDetails("user not found")
	}

	if r.cfg.RequireApprovedUser && user.Status != models.UserStatusApproved {
		return nil, apperrors.ErrUserNotApproved
	}

	return &Principal{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		User:     user,
	}, nil
}
