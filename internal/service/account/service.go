package account

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/db"
	"github.com/jhony29a/bliss/internal/domain"
	"github.com/jhony29a/bliss/internal/repository"
)

// Service implements account operations: registration, credential checks
// and profile reads/updates.
type Service struct {
	appCtx   *app.AppContext
	userRepo *repository.UserRepository
}

// NewService creates an account service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		userRepo: repository.NewUserRepository(appCtx.DB),
	}
}

// RegisterInput carries a new profile. Input shape validation (required
// fields, age floor) belongs to the HTTP layer.
type RegisterInput struct {
	Username      string
	Password      string
	Name          string
	Age           int
	Bio           string
	Location      string
	Gender        string
	LookingFor    string
	ProfilePicURL string
	Interests     []string
	Photos        []string
}

// Register creates an account with a bcrypt-hashed credential. Duplicate
// usernames are rejected with domain.ErrUsernameTaken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*db.User, error) {
	_, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err == nil {
		return nil, domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	lookingFor := in.LookingFor
	if lookingFor == "" {
		lookingFor = "all"
	}

	user := &db.User{
		Username:      in.Username,
		PasswordHash:  string(hash),
		Name:          in.Name,
		Age:           in.Age,
		Bio:           in.Bio,
		Location:      in.Location,
		Gender:        in.Gender,
		LookingFor:    lookingFor,
		ProfilePicURL: in.ProfilePicURL,
		Interests:     datatypes.NewJSONSlice(emptyIfNil(in.Interests)),
		Photos:        datatypes.NewJSONSlice(emptyIfNil(in.Photos)),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.appCtx.Logger.Info("account created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate verifies a username/password pair. Both unknown usernames
// and wrong passwords yield domain.ErrBadCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*db.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrBadCredentials
	}
	return user, nil
}

// Get fetches a profile by id.
func (s *Service) Get(ctx context.Context, id uint64) (*db.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByUsername fetches a profile by exact username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*db.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// UpdateInput lists the profile fields a user may change. Nil pointers
// mean "leave unchanged".
type UpdateInput struct {
	Name          *string
	Age           *int
	Bio           *string
	Location      *string
	Gender        *string
	LookingFor    *string
	ProfilePicURL *string
	Interests     []string
	Photos        []string
}

// Update merges the supplied fields into the profile.
func (s *Service) Update(ctx context.Context, id uint64, in UpdateInput) (*db.User, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Age != nil {
		updates["age"] = *in.Age
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Gender != nil {
		updates["gender"] = *in.Gender
	}
	if in.LookingFor != nil {
		updates["looking_for"] = *in.LookingFor
	}
	if in.ProfilePicURL != nil {
		updates["profile_pic_url"] = *in.ProfilePicURL
	}
	if in.Interests != nil {
		updates["interests"] = datatypes.NewJSONSlice(in.Interests)
	}
	if in.Photos != nil {
		updates["photos"] = datatypes.NewJSONSlice(in.Photos)
	}

	return s.userRepo.Update(ctx, id, updates)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
