package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/fwi-predictor/pkg/models"
)

const pageTitle = "FWI predictor"

// Index serves the landing page.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": pageTitle,
	})
}

// renderForm serves the prediction form. ok marks result as a predicted value
// rather than an error or unavailable message.
func renderForm(c *gin.Context, result string, ok bool) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":  pageTitle,
		"Fields": models.FeatureNames(),
		"Result": result,
		"OK":     ok,
	})
}
