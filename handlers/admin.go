package handlers

import (
	"net/http"
	"strconv"

	"report2clean/services/report"

	"github.com/gin-gonic/gin"
)

// AdminUpdateStatusHandler moves a report to the given triage status.
func AdminUpdateStatusHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), c.Param("status"))
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

// AdminAcceptReportHandler claims a report for the calling admin and moves
// it to onProgress.
func AdminAcceptReportHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := contextUserID(c)
		if !ok {
			return
		}
		rep, err := svc.Accept(c.Request.Context(), c.Param("id"), adminID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

// AdminDeleteReportHandler hard-deletes a report.
func AdminDeleteReportHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// AdminListReportsHandler returns one page of reports, newest first, with
// the submitter joined in.
func AdminListReportsHandler(svc report.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}
		result, err := svc.List(c.Request.Context(), page)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
