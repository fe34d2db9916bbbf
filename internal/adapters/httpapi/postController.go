package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"inkwell/internal/adapters/httpapi/middleware"
	attachmentPort "inkwell/internal/ports/attachment"
	postPort "inkwell/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostController struct {
	pc     PostUseCase
	cc     CommentUseCase
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, cc CommentUseCase, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, cc: cc, logger: logger}
}

// CreatePost form fields: text, group (id, optional), image (file, optional)
func (ctl *PostController) CreatePost(c *gin.Context) {
	groupID, _, ok := formGroup(c)
	if !ok {
		badRequest(c, "group", "select a valid group")
		return
	}
	image, closer, err := formImage(c)
	if err != nil {
		badRequest(c, "image", "could not read upload")
		return
	}
	defer closer.Close()

	res, err := ctl.pc.CreatePost(c.Request.Context(), postPort.CreatePostInput{
		AuthorID: c.GetString(middleware.UserIDKey),
		Text:     c.PostForm("text"),
		GroupID:  groupID,
		Image:    image,
	})
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// EditPost only fields present in the form change; an empty group detaches the post
func (ctl *PostController) EditPost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	var in postPort.EditPostInput
	if text, present := c.GetPostForm("text"); present {
		in.Text = &text
	}
	groupID, present, ok := formGroup(c)
	if !ok {
		badRequest(c, "group", "select a valid group")
		return
	}
	in.GroupID = groupID
	in.ClearGroup = present && groupID == nil

	image, closer, err := formImage(c)
	if err != nil {
		badRequest(c, "image", "could not read upload")
		return
	}
	defer closer.Close()
	in.Image = image

	res, err := ctl.pc.EditPost(c.Request.Context(), postID, c.GetString(middleware.UserIDKey), in)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	res, err := ctl.pc.GetPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) CreateComment(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text" form:"text"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.cc.CreateComment(c.Request.Context(), postID, c.GetString(middleware.UserIDKey), req.Text)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func postIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return 0, false
	}
	return id, true
}

// formGroup reports the group id, whether the field was sent at all, and whether it parsed
func formGroup(c *gin.Context) (*uint, bool, bool) {
	raw, present := c.GetPostForm("group")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, present, true
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return nil, present, false
	}
	g := uint(id)
	return &g, true, true
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func formImage(c *gin.Context) (*attachmentPort.Upload, io.Closer, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nopCloser{}, nil
	}
	if err != nil {
		return nil, nopCloser{}, err
	}
	file, err := fh.Open()
	if err != nil {
		return nil, nopCloser{}, err
	}
	return &attachmentPort.Upload{Filename: fh.Filename, Content: file}, file, nil
}
