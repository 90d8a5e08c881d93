package service

import (
	"testing"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSequenceSteps_DenseListOrder(t *testing.T) {
	id := uuid.New()
	rows := sequenceSteps(id, []dto.StepInput{
		{Number: dto.Num(4), Description: "misturar"},
		{Number: dto.Num(4), Description: "bater"},
		{Description: "assar"},
	})

	assert.Equal(t, []model.PreparationStep{
		{RecipeID: id, StepNumber: 1, Description: "misturar"},
		{RecipeID: id, StepNumber: 2, Description: "bater"},
		{RecipeID: id, StepNumber: 3, Description: "assar"},
	}, rows)
}

func TestSequenceSteps_Empty(t *testing.T) {
	assert.Empty(t, sequenceSteps(uuid.New(), nil))
}

func TestSortSteps_Stable(t *testing.T) {
	steps := []model.PreparationStep{
		{StepNumber: 3, Description: "c"},
		{StepNumber: 1, Description: "a1"},
		{StepNumber: 2, Description: "b"},
		{StepNumber: 1, Description: "a2"},
	}
	sortSteps(steps)

	var got []string
	for _, s := range steps {
		got = append(got, s.Description)
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, got)
}
