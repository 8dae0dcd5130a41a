package main

import (
    "log"
    "net/http"
    "os"

    "github.com/AdisornNangnoi/foodtracker-backend/cache"
    "github.com/AdisornNangnoi/foodtracker-backend/config"
    "github.com/AdisornNangnoi/foodtracker-backend/routes"
    "github.com/AdisornNangnoi/foodtracker-backend/storage"

    "github.com/rs/cors"
)

func main() {
    db := config.InitDB()
    store := storage.NewS3Store()
    profiles := cache.NewProfileCache()

    r := routes.SetupRouter(db, store, profiles)

    handler := cors.New(cors.Options{
        AllowedOrigins: []string{"*"},
        AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
        AllowedHeaders: []string{"Authorization", "Content-Type"},
    }).Handler(r)

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }

    log.Printf("listening on :%s", port)
    log.Fatal(http.ListenAndServe(":"+port, handler))
}
