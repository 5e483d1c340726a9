package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/api/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/api/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/api/user/logout", authMiddleware.ThenFunc(app.userHandler.LogOut))
	mux.Get("/api/user/all", adminAuthMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Get("/api/user", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Put("/api/user", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Get("/api/user/:id", adminAuthMiddleware.ThenFunc(app.userHandler.GetUserByID))

	// Categories
	mux.Post("/api/category", adminAuthMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Get("/api/category", standardMiddleware.ThenFunc(app.categoryHandler.GetCategories))
	mux.Get("/api/category/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByID))
	mux.Put("/api/category/:id", adminAuthMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/api/category/:id", adminAuthMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Items. Literal segments stay above :id so the matcher sees them first.
	mux.Post("/api/item", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/api/item/q", standardMiddleware.ThenFunc(app.itemHandler.SearchItems))
	mux.Get("/api/item/category", standardMiddleware.ThenFunc(app.itemHandler.GetItemsByCategory))
	mux.Get("/api/item/category/:id", standardMiddleware.ThenFunc(app.itemHandler.GetItemsOfCategory))
	mux.Get("/api/item", standardMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Get("/api/item/:id", standardMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Put("/api/item/status/:id", adminAuthMiddleware.ThenFunc(app.itemHandler.UpdateItemStatus))
	mux.Put("/api/item/:id", adminAuthMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/api/item/:id", adminAuthMiddleware.ThenFunc(app.itemHandler.DeleteItem))

	// Claims
	mux.Post("/api/claim", authMiddleware.ThenFunc(app.claimHandler.SubmitClaim))
	mux.Put("/api/claim/verify", adminAuthMiddleware.ThenFunc(app.claimHandler.VerifyClaim))
	mux.Get("/api/claim/u", authMiddleware.ThenFunc(app.claimHandler.GetMyClaims))
	mux.Get("/api/claim", adminAuthMiddleware.ThenFunc(app.claimHandler.GetClaims))

	// Persons
	mux.Post("/api/person", authMiddleware.ThenFunc(app.personHandler.CreatePerson))
	mux.Post("/api/person/found", adminAuthMiddleware.ThenFunc(app.personHandler.CreateFoundPerson))
	mux.Get("/api/person/near", standardMiddleware.ThenFunc(app.personHandler.GetNearby))
	mux.Get("/api/person/q", standardMiddleware.ThenFunc(app.personHandler.SearchPersons))
	mux.Get("/api/person/user", authMiddleware.ThenFunc(app.personHandler.GetMyPersons))
	mux.Get("/api/person/id/:id", standardMiddleware.ThenFunc(app.personHandler.GetPersonByID))
	mux.Get("/api/person", standardMiddleware.ThenFunc(app.personHandler.GetPersons))
	mux.Put("/api/person/status/:id", adminAuthMiddleware.ThenFunc(app.personHandler.UpdatePersonStatus))
	mux.Del("/api/person/:id", authMiddleware.ThenFunc(app.personHandler.DeletePerson))

	// Uploads
	mux.Post("/api/upload/images", authMiddleware.ThenFunc(app.uploadHandler.UploadImages))

	// Admin claim feed. The upgrade handshake does its own auth.
	mux.Get("/ws/claims", http.HandlerFunc(app.claimFeed))

	return mux
}
