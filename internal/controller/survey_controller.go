package controller

import (
	"counter_backend/internal/service"
	"counter_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	Service *service.SurveyService
}

func NewSurveyController(svc *service.SurveyService) *SurveyController {
	return &SurveyController{Service: svc}
}

// GetQuestions returns every survey question with its answer choices in
// presentation order.
func (c *SurveyController) GetQuestions(ctx *gin.Context) {
	list, err := c.Service.ListQuestions()
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}

	util.Success(ctx, list)
}

// Submit records one survey submission. Validation failures come back
// as 400 with the failure message; anything else is the 500 catch-all.
func (c *SurveyController) Submit(ctx *gin.Context) {
	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Submit(req)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalServerError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"success":     true,
		"response_id": result.ResponseID,
		"results":     result.Results,
		"message":     "Survey submitted successfully",
	})
}
