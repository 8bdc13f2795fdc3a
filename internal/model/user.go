package model

type ShortUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type SearchUsersRequest struct {
	Query string `form:"query"`
}

type SearchUsersResponse []ShortUser

type GetProfileRequest struct {
	Username string `uri:"username"`
}

type ProfileStats struct {
	Posts     int64 `json:"posts"`
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

type GetProfileResponse struct {
	User        ShortUser    `json:"user"`
	Stats       ProfileStats `json:"stats"`
	IsFollowing bool         `json:"isFollowing"`
	Posts       []Post       `json:"posts"`
}
