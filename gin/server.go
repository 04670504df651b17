// Package gin provides the HTTP surface for docqa: an upload form and a
// question endpoint backed by the core pipeline.
package gin

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/fwojciec/docqa"
	"github.com/gin-gonic/gin"
)

// Server handles document question requests over HTTP. Each request builds
// and discards its own render model; there is no shared state between
// requests beyond the rate limiter.
type Server struct {
	Answerer  docqa.Answerer
	Inspector docqa.Inspector

	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates a new Server with routing and middleware configured.
func NewServer(answerer docqa.Answerer, inspector docqa.Inspector, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		Answerer:  answerer,
		Inspector: inspector,
		logger:    logger,
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RateLimit(NewClientLimiter(defaultRPS, defaultBurst)))
	router.GET("/", s.handleIndex)
	router.POST("/ask", s.handleAsk)
	s.router = router

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves HTTP on the given address until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// handleAsk runs the full pipeline for one multipart request: preflight the
// uploaded document, ask the question, group and render the answer.
func (s *Server) handleAsk(c *gin.Context) {
	question := strings.TrimSpace(c.PostForm("question"))
	file, fileErr := c.FormFile("document")

	// One warning per missing input so the form can show both at once.
	var warnings []string
	if fileErr != nil {
		warnings = append(warnings, "Please upload a PDF file.")
	}
	if question == "" {
		warnings = append(warnings, "Please enter a question.")
	}
	if len(warnings) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": warnings})
		return
	}

	data, err := readUpload(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Uploaded file could not be read."}})
		return
	}

	pages, err := s.Inspector.Inspect(data)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"errors": []string{docqa.ErrorMessage(err)}})
		return
	}

	segments, err := s.Answerer.Answer(c.Request.Context(), data, question)
	if err != nil {
		s.logger.Error("ask failed",
			"request_id", c.GetString(requestIDKey),
			"error", docqa.ErrorMessage(err),
		)
		c.JSON(statusFromError(err), gin.H{"errors": []string{docqa.ErrorMessage(err)}})
		return
	}

	markdown := docqa.Render(docqa.Group(segments))

	c.JSON(http.StatusOK, gin.H{
		"answer": markdown,
		"pages":  pages,
	})
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// statusFromError maps application error codes to HTTP status codes.
func statusFromError(err error) int {
	switch docqa.ErrorCode(err) {
	case docqa.EINVALID:
		return http.StatusBadRequest
	case docqa.ENOTFOUND:
		return http.StatusNotFound
	case docqa.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
