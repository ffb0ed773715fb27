package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"campBuzz/domain"
	"campBuzz/pkg/logger"
	"campBuzz/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/pobyzaarif/goshortcute"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
	UpdateEmailVerification(ctx context.Context, id uint, isVerified bool) error
}

// PreferenceRepository contract interface
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uint) (domain.UserPreferences, error)
	Upsert(ctx context.Context, prefs *domain.UserPreferences) error
}

// TokenRepository contract interface (Redis-backed session store)
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token string, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) (err error)
}

type userService struct {
	userRepo                UserRepository
	prefRepo                PreferenceRepository
	tokenRepo               TokenRepository
	validate                *validator.Validate
	notifRepo               NotificationRepository
	appEmailVerificationKey string
	appDeploymentUrl        string
}

const (
	verificationCodeTTL      = 5
	sessionTTL               = 24 * time.Hour
	SubjectRegisterAccount   = "Activate Your CampBuzz Account!"
	EmailBodyRegisterAccount = `Hi %v, activate your account by opening the link below</br></br>%v</br>note: the link is only valid for %v minutes`
)

var validRoles = map[string]bool{
	domain.RoleStudent:      true,
	domain.RoleClubAdmin:    true,
	domain.RoleCollegeAdmin: true,
}

func NewUserService(
	userRepo UserRepository,
	prefRepo PreferenceRepository,
	tokenRepo TokenRepository,
	validate *validator.Validate,
	notifRepo NotificationRepository,
	appEmailVerificationKey string,
	appDeploymentUrl string,
) *userService {
	return &userService{
		userRepo:                userRepo,
		prefRepo:                prefRepo,
		tokenRepo:               tokenRepo,
		validate:                validate,
		notifRepo:               notifRepo,
		appEmailVerificationKey: appEmailVerificationKey,
		appDeploymentUrl:        appDeploymentUrl,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	role := user.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !validRoles[role] {
		logger.Error("Invalid user role", user.Role)
		return domain.User{}, errors.New("invalid role")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		FullName:   user.FullName,
		Email:      user.Email,
		Password:   string(passwordHash),
		IsVerified: false,
		Role:       role,
		College:    user.College,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user")
		return domain.User{}, err
	}

	timeNow := time.Now()
	expAt := timeNow.Add(time.Duration(time.Minute * verificationCodeTTL)).Unix()

	verificationCode := fmt.Sprintf("%v|%v", newUser.Email, expAt)
	verificationCodeEncrypt, err := goshortcute.AESCBCEncrypt([]byte(verificationCode), []byte(s.appEmailVerificationKey))
	if err != nil {
		logger.Fatal("error when encrypt")
	}
	strEncode := goshortcute.StringtoBase64Encode(verificationCodeEncrypt)
	activationLink := s.appDeploymentUrl + "/api/v1/users/email-verification/" + strEncode

	err = s.notifRepo.SendEmail(newUser.FullName, newUser.Email, SubjectRegisterAccount, fmt.Sprintf(EmailBodyRegisterAccount, newUser.FullName, activationLink, verificationCodeTTL))
	if err != nil {
		logger.Warn("Failed to send verification email", err)
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, err
	}

	ok := utils.CheckPassword(password, user.Password)
	if !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("incorrect password")
	}

	if !user.IsVerified {
		logger.Error("Email address has not been verified")
		return "", domain.User{}, errors.New("email address has not been verified")
	}

	userIdStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIdStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.tokenRepo != nil {
		if err := s.tokenRepo.StoreToken(ctx, userIdStr, token, sessionTTL); err != nil {
			logger.Warn("Failed to store session token", err)
		}
	}

	user.Password = ""
	return token, user, nil
}

// RefreshToken rotates a live session: the old token must still be valid in
// the session store, it is revoked and a fresh 24h token issued.
func (s *userService) RefreshToken(ctx context.Context, oldToken string) (string, domain.User, error) {
	if s.tokenRepo == nil {
		return "", domain.User{}, errors.New("session store unavailable")
	}

	userIdStr, err := s.tokenRepo.ValidateToken(ctx, oldToken)
	if err != nil {
		logger.Error("Refresh with invalid token", err)
		return "", domain.User{}, errors.New("invalid or expired token")
	}

	userID, err := strconv.ParseUint(userIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid user id in session", err)
		return "", domain.User{}, errors.New("invalid or expired token")
	}

	user, err := s.userRepo.FindByID(ctx, uint(userID))
	if err != nil {
		logger.Error("User not found on refresh", err)
		return "", domain.User{}, errors.New("user not found")
	}

	newToken, err := utils.GenerateJWT(userIdStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if err := s.tokenRepo.DeleteToken(ctx, userIdStr, oldToken); err != nil {
		logger.Warn("Failed to revoke old session token", err)
	}
	if err := s.tokenRepo.StoreToken(ctx, userIdStr, newToken, sessionTTL); err != nil {
		logger.Warn("Failed to store session token", err)
	}

	user.Password = ""
	return newToken, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	if s.tokenRepo == nil {
		return nil
	}

	userIdStr := strconv.FormatUint(uint64(userID), 10)
	if err := s.tokenRepo.DeleteToken(ctx, userIdStr, token); err != nil {
		logger.Error("Failed to delete session token", err)
		return err
	}

	return nil
}

func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	if s.tokenRepo == nil {
		return "", errors.New("session store unavailable")
	}
	return s.tokenRepo.ValidateToken(ctx, token)
}

func (s *userService) VerifyEmail(ctx context.Context, verificationCodeEncrypt string) error {
	strDecode := goshortcute.StringtoBase64Decode(verificationCodeEncrypt)
	verificationCodeDecrypt, err := goshortcute.AESCBCDecrypt([]byte(strDecode), []byte(s.appEmailVerificationKey))
	if err != nil {
		logger.Error("Verifying email error", err)
		return errors.New("invalid or expired url")
	}

	verificationCode := strings.Split(verificationCodeDecrypt, "|")
	if len(verificationCode) != 2 {
		logger.Error("Verifying email error", verificationCodeDecrypt)
		return errors.New("invalid or expired url")
	}

	email := verificationCode[0]
	expAtStr := verificationCode[1]

	ts, err := strconv.ParseInt(expAtStr, 10, 64)
	if err != nil {
		logger.Error("Verifying email error", verificationCodeDecrypt)
		return errors.New("invalid or expired url")
	}
	expAt := time.Unix(ts, 0)
	if time.Now().After(expAt) {
		return errors.New("invalid or expired url")
	}

	getUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Verifying email error", err)
		return errors.New("failed to get user by email")
	}

	if getUser.IsVerified {
		logger.Warn("Verify email err", "email verified already")
		return errors.New("invalid or expired url")
	}

	if err := s.userRepo.UpdateEmailVerification(ctx, getUser.ID, true); err != nil {
		logger.Error("Verify email err", err)
		return err
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

// GetAllUsers retrieves all users
func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return nil, err
	}

	for i := range users {
		users[i].Password = ""
	}

	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, updateData *domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("User not found", err)
		return domain.User{}, errors.New("user not found")
	}

	if updateData.FullName != "" {
		user.FullName = updateData.FullName
	}
	if updateData.College != "" {
		user.College = updateData.College
	}
	if updateData.Password != "" {
		passwordHash, err := utils.HashPassword(updateData.Password)
		if err != nil {
			logger.Error("Failed to hash password", err)
			return domain.User{}, errors.New("failed to hash password")
		}
		user.Password = string(passwordHash)
	}

	if err := s.userRepo.Update(ctx, &user); err != nil {
		logger.Error("Failed to update user", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("invalid user id")
	}

	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		logger.Error("User not found", err)
		return errors.New("user not found")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete user", err)
		return err
	}

	return nil
}

// GetPreferences returns the user's preference profile. A user without one
// gets an empty profile rather than an error.
func (s *userService) GetPreferences(ctx context.Context, userID uint) (domain.UserPreferences, error) {
	prefs, err := s.prefRepo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.UserPreferences{UserID: userID}, nil
	}
	return prefs, nil
}

func (s *userService) UpdatePreferences(ctx context.Context, prefs *domain.UserPreferences) (domain.UserPreferences, error) {
	if prefs.UserID == 0 {
		return domain.UserPreferences{}, errors.New("invalid user id")
	}

	if _, err := s.userRepo.FindByID(ctx, prefs.UserID); err != nil {
		logger.Error("User not found", err)
		return domain.UserPreferences{}, errors.New("user not found")
	}

	if err := s.prefRepo.Upsert(ctx, prefs); err != nil {
		logger.Error("Failed to update preferences", err)
		return domain.UserPreferences{}, err
	}

	return *prefs, nil
}
