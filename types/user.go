package types

import "time"

type UpdateProfileRequest struct {
	Bio   *string `json:"bio"`
	Image *string `json:"image"`
}

type Profile struct {
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	Image          string    `json:"image"`
	FollowersCount int64     `json:"followersCount"`
	FollowingCount int64     `json:"followingCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
