package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"CareMatch-App/internal/auth"
	"CareMatch-App/internal/database"
	"CareMatch-App/internal/domain/service"
	"CareMatch-App/internal/handler"
	pgdatabase "CareMatch-App/internal/infrastructure/database"
	"CareMatch-App/internal/infrastructure/firestore"
	"CareMatch-App/internal/repository"
	"CareMatch-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")
	supabaseJWTSecret := os.Getenv("SUPABASE_JWT_SECRET")
	firestoreProjectID := os.Getenv("FIRESTORE_PROJECT_ID")

	if supabaseURL == "" || supabaseAnonKey == "" || supabaseJWTSecret == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: SUPABASE_URL, SUPABASE_ANON_KEY, SUPABASE_JWT_SECRET")
		fmt.Println("任意の環境変数: SUPABASE_SERVICE_ROLE_KEY, SUPABASE_DB_PASSWORD, FIRESTORE_PROJECT_ID, PORT")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	fmt.Println("Performing Supabase health check...")
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	// リポジトリの構築
	usersRepo := repository.NewSupabaseUsersRepository(supabaseClient)
	facilitiesRepo := repository.NewSupabaseFacilitiesRepository(supabaseClient)
	matchesRepo := repository.NewSupabaseMatchesRepository(supabaseClient)

	// サービスエリアはトランザクション保証のため直接PostgreSQL接続を優先する。
	// SUPABASE_DB_PASSWORD未設定の場合はSupabase経由（非アトミック）にフォールバック
	areasRepo := repository.NewSupabaseServiceAreasRepository(supabaseClient)
	if os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		postgresClient, err := pgdatabase.NewPostgreSQLClientWithRetry(3, 2*time.Second)
		if err != nil {
			log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
		}
		defer postgresClient.Close()
		areasRepo = repository.NewPostgresServiceAreasRepository(postgresClient)
		fmt.Println("✅ PostgreSQL direct connection successful (transactional replace enabled)")
	} else {
		fmt.Println("⚠️  SUPABASE_DB_PASSWORD未設定: サービスエリアの置き換えは非アトミックになります")
	}

	// チャットプレビュー用のFirestore（未設定なら機能ごと無効化）
	var conversationsHandler *handler.ConversationsHandler
	guard := service.NewAccessGuard(facilitiesRepo)
	if firestoreProjectID != "" {
		ctx := context.Background()
		firestoreClient, err := firestore.NewFirestoreClient(ctx, firestoreProjectID)
		if err != nil {
			log.Fatalf("Firestore初期化失敗: %v", err)
		}
		defer firestoreClient.Close()

		conversationsRepo := repository.NewFirestoreConversationsRepository(firestoreClient.GetClient())
		conversationUseCase := usecase.NewConversationUseCase(guard, conversationsRepo)
		conversationsHandler = handler.NewConversationsHandler(conversationUseCase)
	} else {
		fmt.Println("⚠️  FIRESTORE_PROJECT_ID未設定: チャットプレビューAPIは無効です")
	}

	// Dependency injection
	serviceAreaUseCase := usecase.NewServiceAreaUseCase(guard, areasRepo)
	profileUseCase := usecase.NewProfileUseCase(facilitiesRepo)
	matchesUseCase := usecase.NewMatchesUseCase(matchesRepo)

	serviceAreasHandler := handler.NewServiceAreasHandler(serviceAreaUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	matchesHandler := handler.NewMatchesHandler(matchesUseCase)

	// Ginルーターのセットアップ
	r := gin.Default()

	r.GET("/", homeHandler)
	r.GET("/api/health", healthHandler)

	// 認証必須のAPIグループ。Principalの解決はここで一度だけ行う
	api := r.Group("/api")
	api.Use(auth.RequireSession(usersRepo, supabaseJWTSecret))
	{
		api.GET("/service-areas", serviceAreasHandler.List)
		api.GET("/service-areas/covering", serviceAreasHandler.Covering)
		api.POST("/service-areas", serviceAreasHandler.ReplaceAll)
		api.PUT("/service-areas", serviceAreasHandler.UpdateOne)
		api.DELETE("/service-areas", serviceAreasHandler.DeleteOne)

		api.GET("/profile", profileHandler.Get)
		api.PUT("/profile", profileHandler.Update)

		api.GET("/matches", matchesHandler.List)

		if conversationsHandler != nil {
			api.GET("/conversations", conversationsHandler.List)
			api.GET("/conversations/:id/messages", conversationsHandler.Messages)
			api.POST("/conversations/:id/messages", conversationsHandler.Post)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("CareMatch-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}

func homeHandler(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to CareMatch-App!")
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "CareMatch-App"})
}
