package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/veladine/chronicle/pkg/internal/database"
	"github.com/veladine/chronicle/pkg/internal/models"
)

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by name: %v", err)
	}
	return account, nil
}

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func NewAccount(name, nick, email, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err == nil {
		return account, fmt.Errorf("account name %s is already taken", name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account, fmt.Errorf("unable to check account name: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fmt.Errorf("unable to hash password: %v", err)
	}

	account = models.Account{
		Name:         name,
		Nick:         nick,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := database.C.Save(&account).Error; err != nil {
		return account, fmt.Errorf("unable to save account: %v", err)
	}
	return account, nil
}

func AuthenticateAccount(name, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to find account: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return account, fmt.Errorf("invalid credentials")
	}

	return account, nil
}

const sessionTokenLifespan = 7 * 24 * time.Hour

func IssueSessionToken(user models.Account) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTokenLifespan)),
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func RetrieveSessionToken(token string) (models.Account, error) {
	var account models.Account

	claims := jwt.RegisteredClaims{}
	tk, err := jwt.ParseWithClaims(token, &claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil {
		return account, fmt.Errorf("invalid session token: %v", err)
	} else if !tk.Valid {
		return account, fmt.Errorf("invalid session token")
	}

	var uid uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &uid); err != nil {
		return account, fmt.Errorf("malformed session subject: %v", err)
	}

	return GetAccountWithID(uid)
}
