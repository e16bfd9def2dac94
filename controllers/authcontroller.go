package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/twinj/uuid"

	"github.com/zarkopopovski/registrar-chat/models"
)

// AuthController issues and verifies short-lived access tokens for the
// comparison worker. There are no user accounts; the worker authenticates
// with a single shared key and trades it for a JWT.
type AuthController struct {
	WorkerKey    string
	AccessSecret string
}

type Exception struct {
	Message string `json:"message"`
}

func (aController *AuthController) WorkerLogin(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var payload struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(Exception{Message: "Invalid request body"})
		return
	}

	if aController.WorkerKey == "" || payload.APIKey != aController.WorkerKey {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(Exception{Message: "Invalid worker key"})
		return
	}

	ts, err := aController.CreateToken()
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(Exception{Message: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ts)
}

func (aController *AuthController) CreateToken() (*models.TokenDetails, error) {
	td := &models.TokenDetails{}
	td.ExpiresAt = time.Now().Add(time.Minute * 15).Unix()
	td.AccessUUID = uuid.NewV4().String()

	atClaims := jwt.MapClaims{}
	atClaims["authorized"] = true
	atClaims["access_uuid"] = td.AccessUUID
	atClaims["role"] = "comparison-worker"
	atClaims["exp"] = td.ExpiresAt

	at := jwt.NewWithClaims(jwt.SigningMethodHS256, atClaims)

	var err error
	td.AccessToken, err = at.SignedString([]byte(aController.AccessSecret))
	if err != nil {
		return nil, err
	}

	return td, nil
}

func (aController *AuthController) ExtractToken(r *http.Request) string {
	bearToken := r.Header.Get("Authorization")
	strArr := strings.Split(bearToken, " ")
	if len(strArr) == 2 {
		return strArr[1]
	}
	return ""
}

func (aController *AuthController) VerifyToken(r *http.Request) (*jwt.Token, error) {
	tokenString := aController.ExtractToken(r)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(aController.AccessSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (aController *AuthController) TokenValid(r *http.Request) error {
	token, err := aController.VerifyToken(r)
	if err != nil {
		return err
	}
	if _, ok := token.Claims.(jwt.MapClaims); !ok || !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
