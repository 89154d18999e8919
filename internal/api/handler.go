package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studentportal/internal/metrics"
	"studentportal/internal/portal"
)

// Handler exposes the portal service over HTTP. Requests carry the records;
// nothing is stored between calls.
type Handler struct {
	svc *portal.Service
}

// NewHandler wraps a service.
func NewHandler(svc *portal.Service) *Handler {
	return &Handler{svc: svc}
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// AttendanceSummary handles POST /v1/attendance/summary.
func (h *Handler) AttendanceSummary(c *gin.Context) {
	var req struct {
		Records []metrics.AttendanceRecord `json:"records"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Attendance(req.Records))
}

// CumulativeHours handles POST /v1/hours/cumulative.
func (h *Handler) CumulativeHours(c *gin.Context) {
	var req struct {
		Records []metrics.HourRecord `json:"records"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Hours(req.Records))
}

// Progress handles GET /v1/progress?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *Handler) Progress(c *gin.Context) {
	interval := metrics.DateInterval{StartDate: c.Query("start"), EndDate: c.Query("end")}
	if interval.StartDate == "" || interval.EndDate == "" {
		badRequest(c, errors.New("start and end are required"))
		return
	}
	p, err := h.svc.Progress(interval)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"start": interval.StartDate, "end": interval.EndDate, "percent": p})
}

// Status handles GET /v1/status/:domain/:code. Unknown domains and codes
// answer 200 with the fallback entry.
func (h *Handler) Status(c *gin.Context) {
	domain := metrics.Domain(c.Param("domain"))
	code := c.Param("code")
	e := h.svc.Label(domain, code)
	c.JSON(http.StatusOK, gin.H{"domain": domain, "code": code, "label": e.Label, "color": e.Color})
}

// FilterStatus handles POST /v1/status/:domain/filter?status=...
func (h *Handler) FilterStatus(c *gin.Context) {
	var req struct {
		Records []metrics.StatusRecord `json:"records"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Filter(metrics.Domain(c.Param("domain")), req.Records, c.Query("status")))
}

// CourseSummary handles POST /v1/courses/summary.
func (h *Handler) CourseSummary(c *gin.Context) {
	var req portal.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.CourseSummary(req))
}

// Dashboard handles POST /v1/dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	var req portal.DashboardInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Dashboard(req))
}

// Thresholds handles GET /v1/attendance/thresholds.
func (h *Handler) Thresholds(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Thresholds())
}

// NewSession handles POST /v1/attendance/sessions/new: the initial records
// of a session, every listed student present.
func (h *Handler) NewSession(c *gin.Context) {
	var req struct {
		Students []int64 `json:"students"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"student_attendance_status": metrics.DefaultSessionItems(req.Students)})
}

// AvatarColor handles GET /v1/avatar-color?name=...
func (h *Handler) AvatarColor(c *gin.Context) {
	name := c.Query("name")
	c.JSON(http.StatusOK, gin.H{"name": name, "color": metrics.NameColor(name)})
}
