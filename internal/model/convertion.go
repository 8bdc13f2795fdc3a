package model

import "github.com/Pratyush-Px/Gatherly/internal/entity"

func ConvertPost(post *entity.Post) Post {
	if post == nil {
		return Post{}
	}

	return Post{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Likes:     post.Likes,
		CreatedAt: post.CreatedAt,
	}
}

func ConvertShortUser(user *entity.User) ShortUser {
	if user == nil {
		return ShortUser{}
	}

	return ShortUser{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
}
