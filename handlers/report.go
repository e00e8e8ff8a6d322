package handlers

import (
	"net/http"
	"strconv"
	"time"

	"report2clean/services/report"
	"report2clean/services/storage"
	"report2clean/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxReportImages = 5

// CreateReportHandler accepts a multipart submission: description, address,
// coordinates ("lat,lng"), urgency flag and 1-5 images. The report is
// persisted and returned before any notification delivery happens.
func CreateReportHandler(svc report.ReportService, store storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := contextUserID(c)
		if !ok {
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "expected multipart form data")
			return
		}

		files := form.File["images"]
		if len(files) == 0 || len(files) > maxReportImages {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "between 1 and 5 images are required")
			return
		}

		urls := make([]string, 0, len(files))
		for _, file := range files {
			url, err := store.UploadReportImage(c.Request.Context(), file)
			if err != nil {
				logger.Error("Image upload failed", zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError, "Image upload failed", "")
				return
			}
			urls = append(urls, url)
		}

		created, err := svc.Create(c.Request.Context(), report.CreateReportInput{
			ReportedBy:  userID,
			Description: c.PostForm("description"),
			Address:     c.PostForm("address"),
			Coordinates: c.PostForm("coordinates"),
			ImageURLs:   urls,
			Urgency:     c.PostForm("urgency") == "true",
		})
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// NearbyReportsHandler browses reports around a point. Path radius is in
// kilometers and gets clamped server-side; status and date-range filters
// come from query parameters.
func NearbyReportsHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, err := strconv.ParseFloat(c.Param("lat"), 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "latitude is not a number")
			return
		}
		lng, err := strconv.ParseFloat(c.Param("lng"), 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "longitude is not a number")
			return
		}
		radiusKm, err := strconv.ParseFloat(c.Param("radius"), 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "radius is not a number")
			return
		}

		in := report.NearbyInput{
			Lat:      lat,
			Lng:      lng,
			RadiusKm: radiusKm,
			Status:   c.Query("status"),
		}
		if from := c.Query("from"); from != "" {
			t, err := time.Parse("2006-01-02", from)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "Invalid request", "from must be YYYY-MM-DD")
				return
			}
			in.From = t
		}
		if to := c.Query("to"); to != "" {
			t, err := time.Parse("2006-01-02", to)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "Invalid request", "to must be YYYY-MM-DD")
				return
			}
			in.To = t
		}

		reports, err := svc.Nearby(c.Request.Context(), in)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reports": reports})
	}
}

// GetReportHandler returns one report by ID.
func GetReportHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

// MyReportsHandler returns the caller's own submissions.
func MyReportsHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := contextUserID(c)
		if !ok {
			return
		}
		reports, err := svc.Mine(c.Request.Context(), userID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reports": reports})
	}
}
