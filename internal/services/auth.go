package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userRepoPkg "github.com/yungbote/compass-backend/internal/data/repos/user"
	types "github.com/yungbote/compass-backend/internal/domain"
	"github.com/yungbote/compass-backend/internal/pkg/apperr"
	"github.com/yungbote/compass-backend/internal/pkg/ctxutil"
	"github.com/yungbote/compass-backend/internal/pkg/logger"
)

const minPasswordLength = 6

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (uuid.UUID, error)
	// Login returns a signed bearer token and the authenticated user. The
	// failure is uniform across unknown email and wrong password.
	Login(ctx context.Context, email, password string) (string, *types.User, error)
	// VerifyToken accepts the raw Authorization value, with or without a
	// "Bearer " prefix. Validity derives from signature, expiry and the
	// current existence of the referenced user; no session state.
	VerifyToken(ctx context.Context, tokenString string) (uuid.UUID, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	TokenTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     userRepoPkg.UserRepo
	jwtSecretKey string
	tokenTTL     time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo userRepoPkg.UserRepo,
	jwtSecretKey string,
	tokenTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		tokenTTL:     tokenTTL,
	}
}

func (as *authService) Register(ctx context.Context, email, password, name string) (uuid.UUID, error) {
	if email == "" || password == "" || name == "" {
		return uuid.Nil, apperr.Validation("email, password, and name are required")
	}
	if len(password) < minPasswordLength {
		return uuid.Nil, apperr.Validation("password must be at least 6 characters long")
	}

	exists, err := as.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return uuid.Nil, apperr.Store(err)
	}
	if exists {
		return uuid.Nil, apperr.Duplicate("user already exists with this email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	user := &types.User{
		ID:               uuid.New(),
		Email:            email,
		Password:         string(hash),
		Name:             name,
		SkillLevel:       types.DefaultSkillLevel,
		CompletedModules: datatypes.NewJSONSlice([]string{}),
		Achievements:     datatypes.NewJSONSlice([]string{}),
	}
	if _, err := as.userRepo.Create(ctx, nil, user); err != nil {
		return uuid.Nil, apperr.Store(err)
	}

	as.log.Info("User registered", "user_id", user.ID.String())
	return user.ID, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (string, *types.User, error) {
	if email == "" || password == "" {
		return "", nil, apperr.Validation("email and password are required")
	}

	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return "", nil, apperr.Store(err)
	}
	if user == nil {
		return "", nil, apperr.Auth("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Auth("invalid credentials")
	}

	token, err := as.signToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (as *authService) VerifyToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	tokenString = strings.TrimSpace(tokenString)
	if len(tokenString) >= 6 && strings.EqualFold(tokenString[:6], "Bearer") {
		tokenString = strings.TrimSpace(tokenString[6:])
	}
	if tokenString == "" {
		return uuid.Nil, apperr.Auth("token missing")
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, apperr.Auth("token expired")
		}
		return uuid.Nil, apperr.Auth("token invalid")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, apperr.Auth("token invalid")
	}
	sub, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, apperr.Auth("token invalid")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, apperr.Auth("token invalid")
	}

	user, err := as.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return uuid.Nil, apperr.Store(err)
	}
	if user == nil {
		return uuid.Nil, apperr.Auth("user not found")
	}
	return userID, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	userID, err := as.VerifyToken(ctx, tokenString)
	if err != nil {
		return ctx, err
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: userID}), nil
}

func (as *authService) TokenTTL() time.Duration { return as.tokenTTL }

func (as *authService) signToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(as.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}
