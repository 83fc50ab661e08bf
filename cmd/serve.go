package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"taxo/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run Taxo as an HTTP API server",
	Long: `Starts an HTTP server exposing the matching and validation engine
via a RESTful API so admin tooling and ingestion jobs can call it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default() // Includes logger and recovery middleware

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			v1.POST("/match", apiHandler.MatchHandler)
			v1.POST("/match/batch", apiHandler.BatchMatchHandler)
			v1.POST("/triage", apiHandler.TriageHandler)
			v1.POST("/validate", apiHandler.ValidateHandler)
			v1.POST("/suggest", apiHandler.SuggestHandler)
		}

		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.Printf("Starting Taxo API server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			log.Printf("ERROR: Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}

		log.Println("Taxo API server stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
