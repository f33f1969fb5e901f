package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/marustas/MealMasterServer/config"
	"github.com/marustas/MealMasterServer/controllers"
	"github.com/marustas/MealMasterServer/middlewares"
	"github.com/marustas/MealMasterServer/repositories"
	"github.com/marustas/MealMasterServer/services"
)

// Repositories bundles the injected stores the router wires into controllers.
type Repositories struct {
	Users       *repositories.UserRepository
	Ingredients *repositories.IngredientRepository
	Recipes     *repositories.RecipeRepository
	Meals       *repositories.MealRepository
}

func SetupRouter(cfg *config.Config, repos Repositories) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:              []string{cfg.CORSOrigin},
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:              []string{"Origin", "Content-Type", "Authorization"},
		OptionsResponseStatusCode: http.StatusNoContent,
	}))

	authCtl := controllers.NewAuthController(services.NewAuthService(repos.Users))
	userCtl := controllers.NewUserController(repos.Users)
	ingredientCtl := controllers.NewIngredientController(repos.Ingredients)
	recipeCtl := controllers.NewRecipeController(repos.Recipes)
	mealCtl := controllers.NewMealController(repos.Meals)

	authRequired := middlewares.AuthMiddleware()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	r.POST("/signup", authCtl.Signup)
	r.POST("/login", authCtl.Login)

	// User routes
	r.GET("/user", authRequired, userCtl.GetUser)
	r.PUT("/user", authRequired, userCtl.UpdateCalorieGoal)
	r.PUT("/subscribe", authRequired, userCtl.Subscribe)

	// Meal plan slots
	meal := r.Group("/meal")
	meal.Use(authRequired)
	{
		meal.GET("", mealCtl.List)
		meal.POST("", mealCtl.Put)
		meal.DELETE("/:recipeId", mealCtl.Delete)
	}

	// Ingredients, always scoped to the authenticated owner
	ingredients := r.Group("/ingredients")
	ingredients.Use(authRequired)
	{
		ingredients.GET("", ingredientCtl.List)
		ingredients.GET("/:id", ingredientCtl.Get)
		ingredients.POST("", ingredientCtl.Create)
		ingredients.PUT("/:id", ingredientCtl.Update)
		ingredients.DELETE("/:id", ingredientCtl.Delete)
	}

	// Recipes: reads are public, mutations require auth
	r.GET("/recipes", recipeCtl.List)
	r.GET("/recipes/:id", recipeCtl.Get)
	r.POST("/recipes", authRequired, recipeCtl.Create)
	r.PUT("/recipes/:id", authRequired, recipeCtl.Update)
	r.DELETE("/recipes/:id", authRequired, recipeCtl.Delete)

	return r
}
