package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/matthieukhl/schemapilot/internal/simdata"
)

type queryRequest struct {
	Query    string `json:"query"`
	SQL      string `json:"sql"`
	Text     string `json:"text"`
	Question string `json:"question"`
}

// text returns the first non-empty field, trimmed.
func (r *queryRequest) text() string {
	for _, v := range []string{r.Query, r.Question, r.SQL, r.Text} {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func (s *Server) uploadSchema(c *gin.Context) {
	names := uploadedFileNames(c)
	if len(names) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No files selected"})
		return
	}

	result, err := s.backend.UploadSchema(c.Request.Context(), names)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
		"data":    gin.H{"status": result.Status, "document_id": result.DocumentID},
	})
}

func (s *Server) querySchema(c *gin.Context) {
	var req queryRequest
	_ = c.ShouldBindJSON(&req)
	query := req.text()
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Query is required"})
		return
	}

	result, err := s.backend.QuerySchema(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

func (s *Server) translateQuery(c *gin.Context) {
	var req queryRequest
	_ = c.ShouldBindJSON(&req)
	query := req.text()
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Query is required"})
		return
	}

	result, err := s.backend.Translate(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

func (s *Server) executeSQL(c *gin.Context) {
	var req queryRequest
	_ = c.ShouldBindJSON(&req)
	sql := strings.TrimSpace(req.SQL)
	if sql == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No SQL provided"})
		return
	}

	seed := int64(simdata.Hash(sql) % 10000)
	result, err := s.backend.ExecuteSQL(c.Request.Context(), sql, seed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

func (s *Server) analytics(c *gin.Context) {
	period := c.DefaultQuery("period", "month")
	metric := c.DefaultQuery("metric", "revenue")
	seed := int64(simdata.Hash(period+metric) % 10000)

	result, err := s.backend.Analytics(c.Request.Context(), period, metric, seed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) listDocuments(c *gin.Context) {
	docs, err := s.backend.ListDocuments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (s *Server) deleteDocument(c *gin.Context) {
	if err := s.backend.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) clearVectorStore(c *gin.Context) {
	if err := s.backend.ClearStore(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vector store cleared."})
}

type workflowRequest struct {
	Query       string `json:"query"`
	NL2SQLQuery string `json:"nl2sql_query"`
}

// workflow runs upload (optional), query schema and nl2sql in sequence.
// The request is either plain JSON or a multipart form carrying files[] and
// a json_data field.
func (s *Server) workflow(c *gin.Context) {
	var req workflowRequest
	names := uploadedFileNames(c)
	if raw := c.PostForm("json_data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error(), "errors": []string{err.Error()}})
			return
		}
	} else {
		_ = c.ShouldBindJSON(&req)
	}

	ctx := c.Request.Context()
	results := gin.H{
		"step1_upload": nil,
		"step2_query":  nil,
		"step3_nl2sql": nil,
		"success":      false,
		"errors":       []string{},
	}
	errs := []string{}
	ran := false

	if len(names) > 0 {
		upload, err := s.backend.UploadSchema(ctx, names)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			ran = true
			results["step1_upload"] = gin.H{
				"success": true,
				"message": upload.Message,
				"data":    gin.H{"document_id": upload.DocumentID},
			}
		}
	}

	if req.Query != "" {
		query, err := s.backend.QuerySchema(ctx, req.Query)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			ran = true
			results["step2_query"] = gin.H{"success": true, "data": query}
		}
	}

	if req.NL2SQLQuery != "" {
		sql, err := s.backend.Translate(ctx, req.NL2SQLQuery)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			ran = true
			results["step3_nl2sql"] = gin.H{"success": true, "data": sql}
		}
	}

	results["success"] = ran
	results["errors"] = errs
	c.JSON(http.StatusOK, results)
}

// uploadedFileNames returns the non-empty filenames of a files[] multipart
// field, or nil when the request carries no usable files.
func uploadedFileNames(c *gin.Context) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var names []string
	for _, f := range form.File["files[]"] {
		if f != nil && f.Filename != "" {
			names = append(names, f.Filename)
		}
	}
	return names
}
