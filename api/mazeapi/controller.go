package mazeapi

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/beka-birhanu/ascii-maze-api/maze"
	"github.com/beka-birhanu/ascii-maze-api/service/i"
	"github.com/gin-gonic/gin"
)

const lookupTimeout = 2 * time.Second

// MazeController manages maze conversion and lookup operations.
type MazeController struct {
	converter i.Converter
}

// NewMazeController initializes a MazeController.
func NewMazeController(converter i.Converter) (*MazeController, error) {
	if converter == nil {
		return nil, errors.New("maze controller requires a converter")
	}
	return &MazeController{
		converter: converter,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:title", mc.byTitle)
		mazes.GET("/:title/blocks", mc.blocksByTitle)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.convert)
		mazes.DELETE("/:title", mc.remove)
	}
}

// convert handles conversion requests.
func (mc *MazeController) convert(ctx *gin.Context) {
	var request ConvertRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := mc.converter.Convert(ctx, request.FileName)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, doc)
}

// byTitle retrieves the canonical wall document of a stored maze.
func (mc *MazeController) byTitle(ctx *gin.Context) {
	doc, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, doc)
}

// blocksByTitle retrieves the cell-centric serialization of a stored maze.
func (mc *MazeController) blocksByTitle(ctx *gin.Context) {
	doc, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, doc.Blocks())
}

func (mc *MazeController) lookup(ctx *gin.Context) (*maze.WallDocument, bool) {
	title := ctx.Params.ByName("title")

	timeoutCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	doc, err := mc.converter.ByTitle(timeoutCtx, title)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return doc, true
}

// remove deletes a stored maze.
func (mc *MazeController) remove(ctx *gin.Context) {
	title := ctx.Params.ByName("title")

	timeoutCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	if err := mc.converter.Remove(timeoutCtx, title); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// statusFor maps conversion errors to response codes. Format
// violations are the caller's fault; everything else is ours.
func statusFor(err error) int {
	var malformed *maze.MalformedInputError
	var unknown *maze.UnknownCharacterError

	switch {
	case errors.Is(err, i.ErrMazeNotFound), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrMissingExtension),
		errors.Is(err, maze.ErrEmptyTitle),
		errors.As(err, &malformed),
		errors.As(err, &unknown):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
