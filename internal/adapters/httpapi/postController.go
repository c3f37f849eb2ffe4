package httpapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/access"
	"yatube/internal/core/apperr"
	postPort "yatube/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	pc PostUseCase
	cc CommentUseCase
}

func NewPostController(pc PostUseCase, cc CommentUseCase) *PostController {
	return &PostController{pc: pc, cc: cc}
}

// CreateForm فرم خالی ساخت پست؛ مهمان به صفحه ورود هدایت می‌شود
func (ctl *PostController) CreateForm(c *gin.Context) {
	if d := access.RequireAuth(middleware.Actor(c), access.CreatePostPath); !d.Allowed() {
		c.Redirect(http.StatusFound, d.Target)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": gin.H{"text": "", "group": nil}, "is_edit": false})
}

// CreatePost هویت قبل از خواندن فرم بررسی می‌شود
func (ctl *PostController) CreatePost(c *gin.Context) {
	actor := middleware.Actor(c)
	if d := access.RequireAuth(actor, access.CreatePostPath); !d.Allowed() {
		c.Redirect(http.StatusFound, d.Target)
		return
	}
	in, form, err := readPostForm(c)
	if err != nil {
		respondError(c, err, form)
		return
	}
	if _, err := ctl.pc.CreatePost(c.Request.Context(), actor, in); err != nil {
		respondError(c, err, form)
		return
	}
	c.Redirect(http.StatusFound, access.ProfilePath(actor.Username))
}

func (ctl *PostController) EditForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	p, err := ctl.pc.CheckEdit(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": p, "is_edit": true})
}

// EditPost resolves login and authorship before the form is parsed.
func (ctl *PostController) EditPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	actor := middleware.Actor(c)
	if _, err := ctl.pc.CheckEdit(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, nil)
		return
	}
	in, form, err := readPostForm(c)
	if err != nil {
		respondError(c, err, form)
		return
	}
	if _, err := ctl.pc.EditPost(c.Request.Context(), actor, id, in); err != nil {
		respondError(c, err, form)
		return
	}
	c.Redirect(http.StatusFound, access.PostDetailPath(id))
}

// PostDetail پست به همراه نظرها، قدیمی‌ترین اول
func (ctl *PostController) PostDetail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	p, err := ctl.pc.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	comments, err := ctl.cc.ListForPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"post":           p,
		"comments":       comments,
		"comments_count": len(comments),
	})
}

// AddComment always returns to the post; an empty comment is dropped.
func (ctl *PostController) AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	_, err := ctl.cc.AddComment(c.Request.Context(), middleware.Actor(c), id, c.PostForm("text"))
	if err != nil && !apperr.IsValidation(err) {
		respondError(c, err, nil)
		return
	}
	c.Redirect(http.StatusFound, access.PostDetailPath(id))
}

// readPostForm parses text, group and image from a urlencoded or multipart body.
func readPostForm(c *gin.Context) (postPort.PostInput, gin.H, error) {
	text := c.PostForm("text")
	groupRaw := strings.TrimSpace(c.PostForm("group"))
	form := gin.H{"text": text, "group": groupRaw}

	in := postPort.PostInput{Text: text}
	if groupRaw != "" {
		id, err := strconv.ParseUint(groupRaw, 10, 64)
		if err != nil {
			return in, form, apperr.NewValidationError("group", "Select a valid choice. That choice is not one of the available choices.")
		}
		gid := uint(id)
		in.GroupID = &gid
	}

	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			return in, form, apperr.NewInternalError(err)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return in, form, apperr.NewInternalError(err)
		}
		in.Image = &postPort.ImageUpload{Filename: fh.Filename, Body: bytes.NewReader(data)}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return in, form, apperr.NewValidationError("image", "The submitted data was not a file. Check the encoding type on the form.")
	}
	return in, form, nil
}
