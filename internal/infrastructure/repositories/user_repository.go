package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:30"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	PasswordHash string    `gorm:"column:password;size:255"`
	IsActive     bool      `gorm:"default:true"`
	LastLogin    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. The unique indexes on username
// and email are the source of truth; a duplicate-key rejection is resolved
// to the colliding field after the fact, which also covers the race where
// two registrations pass any pre-check simultaneously.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.resolveDuplicate(ctx, user.Username, user.Email, 0)
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByUsername implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateProfile implements domain.UserRepository. Only the provided fields
// are written; the password column is never touched here.
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id uint, upd domain.ProfileUpdate) (*domain.User, error) {
	updates := map[string]interface{}{}
	if upd.Username != "" {
		updates["username"] = upd.Username
	}
	if upd.Email != "" {
		updates["email"] = upd.Email
	}

	if len(updates) > 0 {
		// Pre-check for a precise conflict message; the unique index still
		// backstops the race below.
		var existing DBUser
		err := r.db.WithContext(ctx).
			Where("id <> ?", id).
			Where(r.db.Where("email = ?", upd.Email).Or("username = ?", upd.Username)).
			First(&existing).Error
		if err == nil {
			if upd.Email != "" && existing.Email == upd.Email {
				return nil, domain.ErrEmailTaken
			}
			return nil, domain.ErrUsernameTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if err := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, r.resolveDuplicate(ctx, upd.Username, upd.Email, id)
			}
			return nil, err
		}
	}

	return r.FindByID(ctx, id)
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("password", passwordHash).Error
}

// UpdateLastLogin implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("last_login", at).Error
}

// resolveDuplicate determines which unique field a rejected write collided
// on. excludeID filters out the record being updated.
func (r *UserRepositoryImpl) resolveDuplicate(ctx context.Context, username, email string, excludeID uint) error {
	if email != "" {
		var count int64
		q := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err == nil && count > 0 {
			return domain.ErrEmailTaken
		}
	}
	return domain.ErrUsernameTaken
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsActive:     user.IsActive,
		LastLogin:    user.LastLogin,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		IsActive:     dbUser.IsActive,
		LastLogin:    dbUser.LastLogin,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
