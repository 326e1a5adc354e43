package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInitDataInvalid = errors.New("init data signature invalid")
	ErrInitDataExpired = errors.New("init data expired")
	ErrInitDataNoUser  = errors.New("init data has no user")
)

// WebAppUser is the user payload Telegram embeds in web-app init data.
type WebAppUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
}

// ValidateInitData checks the HMAC signature of web-app init data against
// the bot token and rejects data older than maxAge. The secret key is
// HMAC-SHA256("WebAppData", botToken); the signed payload is the sorted
// key=value list joined by newlines, hash excluded.
func ValidateInitData(initData, botToken string, maxAge time.Duration, now time.Time) error {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return fmt.Errorf("parse init data: %w", err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return ErrInitDataInvalid
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	secretMAC := hmac.New(sha256.New, []byte("WebAppData"))
	secretMAC.Write([]byte(botToken))
	secretKey := secretMAC.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(dataCheckString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return ErrInitDataInvalid
	}

	if authDate := values.Get("auth_date"); authDate != "" {
		authTime, err := strconv.ParseInt(authDate, 10, 64)
		if err != nil {
			return ErrInitDataInvalid
		}
		if now.Sub(time.Unix(authTime, 0)) > maxAge {
			return ErrInitDataExpired
		}
	}

	return nil
}

// ParseInitDataUser extracts the user payload from init data. Validate first.
func ParseInitDataUser(initData string) (WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return WebAppUser{}, fmt.Errorf("parse init data: %w", err)
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return WebAppUser{}, ErrInitDataNoUser
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return WebAppUser{}, fmt.Errorf("unmarshal user: %w", err)
	}
	if user.ID == 0 {
		return WebAppUser{}, ErrInitDataNoUser
	}
	return user, nil
}
