package models

type TokenDetails struct {
	AccessToken string `json:"access_token"`
	AccessUUID  string `json:"-"`
	ExpiresAt   int64  `json:"expires_at"`
}
