package model

type FollowRequest struct {
	UserID string `uri:"userId"`
}

type FollowResponse struct {
	Message string `json:"message"`
}

type UnfollowRequest struct {
	UserID string `uri:"userId"`
}

type UnfollowResponse struct {
	Message string `json:"message"`
}

type GetFollowingRequest struct {
	UserID string `uri:"userId"`
}

type GetFollowingResponse struct {
	Following []ShortUser `json:"following"`
}

type GetFollowersRequest struct {
	UserID string `uri:"userId"`
}

type GetFollowersResponse struct {
	Followers []ShortUser `json:"followers"`
}
