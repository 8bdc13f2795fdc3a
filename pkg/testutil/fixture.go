package testutil

import (
	"context"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
)

var (
	User1 = entity.User{
		Base:     entity.Base{ID: "user1"},
		Name:     "Ann Perkins",
		Username: "ann",
		Email:    "ann@example.com",
	}

	User2 = entity.User{
		Base:     entity.Base{ID: "user2"},
		Name:     "Ben Wyatt",
		Username: "ben",
		Email:    "ben@example.com",
	}

	User3 = entity.User{
		Base:     entity.Base{ID: "user3"},
		Name:     "Leslie Knope",
		Username: "leslie",
		Email:    "leslie@example.com",
	}

	Post1 = entity.Post{
		Base:    entity.Base{ID: "post1"},
		UserID:  User1.ID,
		Content: "First post",
	}

	Post2 = entity.Post{
		Base:    entity.Base{ID: "post2"},
		UserID:  User2.ID,
		Content: "Hello from ben",
	}
)

// CreateFixtureDb seeds the database attached to ctx with the fixture users
// and posts above.
func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertPosts(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2, User3} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func InsertPosts(ctx context.Context) {
	postRepo := repository.NewPostRepository()

	for _, post := range []entity.Post{Post1, Post2} {
		post := post
		if err := postRepo.Create(ctx, &post); err != nil {
			panic(err)
		}
	}
}
