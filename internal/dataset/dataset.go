// Package dataset serves the bundled static cocktail dataset. The dataset
// is an explicit object loaded once at startup and injected into the
// aggregator; there is no ambient module-level cache.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/barstock/backend/internal/model"
)

// Dataset is an immutable in-memory copy of the harvested recipe list.
type Dataset struct {
	recipes []model.Cocktail
	byID    map[string]int
}

// New builds a dataset from recipes already in memory. Entries without an
// identity or name are dropped.
func New(recipes []model.Cocktail) *Dataset {
	kept := make([]model.Cocktail, 0, len(recipes))
	byID := make(map[string]int, len(recipes))
	for _, recipe := range recipes {
		if strings.TrimSpace(recipe.ID) == "" || strings.TrimSpace(recipe.Name) == "" {
			continue
		}
		if _, ok := byID[recipe.ID]; ok {
			continue
		}
		byID[recipe.ID] = len(kept)
		kept = append(kept, recipe)
	}
	return &Dataset{recipes: kept, byID: byID}
}

// Empty returns a dataset with no recipes, for deployments that ship
// without the bundled file.
func Empty() *Dataset {
	return New(nil)
}

// LoadFile reads a {"drinks": [...]} document from disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return parse(f)
}

// LoadS3 reads the same document from an S3 object, for deployments where
// the harvested dataset is not baked into the image.
func LoadS3(ctx context.Context, client *s3.Client, bucket, key string) (*Dataset, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get dataset object: %w", err)
	}
	defer out.Body.Close()
	return parse(out.Body)
}

func parse(r io.Reader) (*Dataset, error) {
	var doc model.DrinksResponse
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return New(doc.Drinks), nil
}

// All returns the full recipe list. Callers must not mutate it.
func (d *Dataset) All() []model.Cocktail {
	return d.recipes
}

// FindByID returns a copy of the recipe with the given identity, or nil.
func (d *Dataset) FindByID(id string) *model.Cocktail {
	idx, ok := d.byID[id]
	if !ok {
		return nil
	}
	recipe := d.recipes[idx]
	return &recipe
}

// Len reports the number of recipes.
func (d *Dataset) Len() int {
	return len(d.recipes)
}
