package api

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	router := app.Group(baseURL)
	{
		router.Get("/", getGlobalFeed)
		router.Get("/group/:slug", getGroupFeed)
		router.Get("/follow", getFollowedFeed)

		router.Get("/profile/:username", getProfileFeed)
		router.Post("/profile/:username/follow", followAuthor)
		router.Post("/profile/:username/unfollow", unfollowAuthor)

		router.Get("/create", getPostForm)
		router.Post("/create", createPost)
		router.Get("/posts/:postId", getPostDetail)
		router.Get("/posts/:postId/edit", getPostEditForm)
		router.Post("/posts/:postId/edit", editPost)
		router.Post("/posts/:postId/delete", deletePost)
		router.Post("/posts/:postId/comment", createComment)

		router.Get("/auth/login", getLogin)
		router.Post("/auth/login", doLogin)
		router.Post("/auth/signup", doSignup)

		router.Get("/about/author", getAboutAuthor)
		router.Get("/about/tech", getAboutTech)
	}
}
