package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/wastewise-v1/backend/internal/model"
)

// Defaults applied when the request leaves prep time or servings unset.
const (
	defaultPrepTime = 30
	defaultServings = 4
)

// GenerateParams are the caller-supplied constraints for a generation run.
type GenerateParams struct {
	Ingredients         []string
	PrepTime            int
	Servings            int
	DietaryRestrictions []string
	Cuisine             string
}

// recipeDraft mirrors the JSON schema the prompt asks the model for.
// Numeric fields tolerate string encodings because the output is untrusted.
type recipeDraft struct {
	Title        string                     `json:"title"`
	Description  string                     `json:"description"`
	Ingredients  model.RecipeIngredientList `json:"ingredients"`
	Instructions model.JSONBStringArray     `json:"instructions"`
	PrepTime     FlexInt                    `json:"prepTime"`
	CookTime     FlexInt                    `json:"cookTime"`
	Servings     FlexInt                    `json:"servings"`
	Difficulty   string                     `json:"difficulty"`
	Cuisine      string                     `json:"cuisine"`
}

// RecipeService runs the generation pipeline and reads back saved recipes.
type RecipeService struct {
	db  *gorm.DB
	llm LLMClient
}

func NewRecipeService(db *gorm.DB, llm LLMClient) *RecipeService {
	return &RecipeService{
		db:  db,
		llm: llm,
	}
}

// BuildRecipePrompt embeds the selected ingredients and constraints into the
// instruction and spells out the exact JSON schema the response must follow.
func BuildRecipePrompt(p GenerateParams) string {
	restrictions := "No dietary restrictions"
	if len(p.DietaryRestrictions) > 0 {
		restrictions = "Dietary restrictions: " + strings.Join(p.DietaryRestrictions, ", ")
	}

	cuisine := "Any cuisine style"
	if p.Cuisine != "" {
		cuisine = "Cuisine style: " + p.Cuisine
	}

	return fmt.Sprintf(`You are a creative chef helping to reduce food waste. Create a delicious recipe using these ingredients: %s.

Requirements:
- Preparation time: approximately %d minutes
- Servings: %d
- %s
- %s

Please provide the recipe in the following JSON format:
{
  "title": "Creative recipe name",
  "description": "Brief description of the dish",
  "ingredients": [
    {
      "name": "ingredient name",
      "quantity": "amount",
      "unit": "measurement unit"
    }
  ],
  "instructions": [
    "Step 1",
    "Step 2",
    ...
  ],
  "prepTime": number in minutes,
  "cookTime": number in minutes,
  "servings": number of servings,
  "difficulty": "Easy/Medium/Hard",
  "cuisine": "cuisine type"
}

Be creative with the recipe name and make it appealing! Focus on minimizing waste and using all provided ingredients effectively.`,
		strings.Join(p.Ingredients, ", "), p.PrepTime, p.Servings, restrictions, cuisine)
}

// Generate runs the pipeline: build the prompt, call the model once, extract
// and parse the JSON, persist. Any transport or parse failure collapses to
// ErrGeneration and no recipe row is written. The persisted recipe keeps the
// requested ingredient names verbatim, whatever the model proposed.
func (s *RecipeService) Generate(ctx context.Context, userID uuid.UUID, p GenerateParams) (*model.Recipe, error) {
	if p.PrepTime <= 0 {
		p.PrepTime = defaultPrepTime
	}
	if p.Servings <= 0 {
		p.Servings = defaultServings
	}

	raw, err := s.llm.Complete(ctx, BuildRecipePrompt(p))
	if err != nil {
		log.Printf("recipe generation: model call failed: %v", err)
		return nil, errors.Join(ErrGeneration, err)
	}

	jsonStr, err := ExtractJSON(raw)
	if err != nil {
		log.Printf("recipe generation: %v", err)
		return nil, errors.Join(ErrGeneration, err)
	}

	var draft recipeDraft
	if err := json.Unmarshal([]byte(jsonStr), &draft); err != nil {
		log.Printf("recipe generation: failed to parse model output: %v", err)
		return nil, errors.Join(ErrGeneration, err)
	}

	recipe := model.Recipe{
		Title:            draft.Title,
		Description:      draft.Description,
		Ingredients:      draft.Ingredients,
		Instructions:     draft.Instructions,
		PrepTime:         int(draft.PrepTime),
		CookTime:         int(draft.CookTime),
		Servings:         int(draft.Servings),
		Difficulty:       draft.Difficulty,
		Cuisine:          draft.Cuisine,
		SavedIngredients: model.JSONBStringArray(p.Ingredients),
		UserID:           userID,
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns the caller's saved recipes newest-first.
func (s *RecipeService) List(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get retrieves a recipe by ID
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}
