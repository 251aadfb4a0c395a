// Command harvest builds the bundled recipe dataset: it walks the
// CocktailDB catalog a letter at a time, tops the result up from an open
// recipe collection, dedupes by name and writes a {"drinks": [...]}
// JSON file. With -upload it also pushes the file to the configured S3
// bucket so deployments can refresh without a rebuild.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/barstock/backend/config"
	"github.com/barstock/backend/internal/client"
	"github.com/barstock/backend/internal/ingredient"
	"github.com/barstock/backend/internal/model"
	"github.com/barstock/backend/pkg/logger"
)

const (
	collectionDataset = "erwanlc/cocktails_recipe_no_brand"
	collectionBaseURL = "https://datasets-server.huggingface.co"
	collectionBatch   = 100
	fallbackThumbnail = "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?auto=format&fit=crop&w=800&q=80"
)

// ingredientPair matches one ['measure', 'ingredient'] tuple in the
// collection's raw ingredient column.
var ingredientPair = regexp.MustCompile(`\['([^']*)'\s*,\s*'([^']*)'\]`)

func main() {
	var (
		out    = flag.String("out", "", "output path (default: DATASET_PATH)")
		target = flag.Int("target", 1000, "number of recipes to collect")
		upload = flag.Bool("upload", false, "upload the dataset to the configured S3 bucket")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	zapLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console", Development: true})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	outPath := *out
	if outPath == "" {
		outPath = cfg.DatasetPath
	}

	ctx := context.Background()

	cocktailDB := client.NewCocktailDBClient(cfg.CocktailDBBaseURL, 10*time.Second, zapLogger)
	harvested := harvestCocktailDB(ctx, cocktailDB, zapLogger)
	zapLogger.Info("cocktaildb harvest done", zap.Int("recipes", len(harvested)))

	supplement := harvestCollection(ctx, zapLogger, *target*3)
	zapLogger.Info("collection harvest done", zap.Int("recipes", len(supplement)))

	merged := dedupeByName(append(harvested, supplement...))
	if len(merged) > *target {
		merged = merged[:*target]
	}
	if len(merged) < *target {
		zapLogger.Fatal("not enough recipes after dedupe",
			zap.Int("have", len(merged)), zap.Int("want", *target))
	}

	payload, err := json.Marshal(model.DrinksResponse{Drinks: merged})
	if err != nil {
		zapLogger.Fatal("marshal failed", zap.Error(err))
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		zapLogger.Fatal("mkdir failed", zap.Error(err))
	}
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		zapLogger.Fatal("write failed", zap.Error(err))
	}
	zapLogger.Info("dataset written", zap.String("path", outPath), zap.Int("recipes", len(merged)))

	if *upload {
		if err := uploadDataset(ctx, cfg, payload); err != nil {
			zapLogger.Fatal("s3 upload failed", zap.Error(err))
		}
		zapLogger.Info("dataset uploaded",
			zap.String("bucket", cfg.DatasetS3Bucket),
			zap.String("key", cfg.DatasetS3Key))
	}
}

// harvestCocktailDB walks search.php?f=a..z. A failed letter is skipped,
// not fatal; the collection source makes up the difference.
func harvestCocktailDB(ctx context.Context, c *client.CocktailDBClient, zapLogger *zap.Logger) []model.Cocktail {
	var results []model.Cocktail
	for letter := 'a'; letter <= 'z'; letter++ {
		found, err := c.SearchByFirstLetter(ctx, string(letter))
		if err != nil {
			zapLogger.Warn("letter fetch failed", zap.String("letter", string(letter)), zap.Error(err))
			continue
		}
		for i := range found {
			results = append(results, fillDefaults(found[i]))
		}
	}
	return results
}

// collectionRow is one row of the open recipe collection's rows endpoint.
type collectionRow struct {
	Rows []struct {
		RowIdx int `json:"row_idx"`
		Row    struct {
			Title          string `json:"title"`
			Glass          string `json:"glass"`
			Recipe         string `json:"recipe"`
			Ingredients    string `json:"ingredients"`
			RawIngredients string `json:"raw_ingredients"`
		} `json:"row"`
	} `json:"rows"`
}

func harvestCollection(ctx context.Context, zapLogger *zap.Logger, limit int) []model.Cocktail {
	rest := resty.New().SetBaseURL(collectionBaseURL).SetTimeout(15 * time.Second)

	var results []model.Cocktail
	for offset := 0; len(results) < limit; offset += collectionBatch {
		var doc collectionRow
		resp, err := rest.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"dataset": collectionDataset,
				"config":  "default",
				"split":   "train",
				"offset":  fmt.Sprint(offset),
				"length":  fmt.Sprint(collectionBatch),
			}).
			SetResult(&doc).
			Get("/rows")
		if err != nil || resp.IsError() {
			zapLogger.Warn("collection fetch failed", zap.Int("offset", offset), zap.Error(err))
			break
		}
		if len(doc.Rows) == 0 {
			break
		}

		for _, wrapper := range doc.Rows {
			row := wrapper.Row
			title := strings.TrimSpace(row.Title)
			if title == "" {
				continue
			}
			raw := row.RawIngredients
			if raw == "" {
				raw = row.Ingredients
			}
			slots := parseIngredientPairs(raw)
			if len(slots) == 0 || !isAlcoholic(slots) {
				continue
			}

			instructions := row.Recipe
			if instructions == "" {
				instructions = "No instructions provided."
			}
			glass := row.Glass
			if glass == "" {
				glass = "Cocktail glass"
			}

			results = append(results, model.Cocktail{
				ID:           fmt.Sprintf("%shf-%d", model.LocalIDPrefix, offset+wrapper.RowIdx),
				Name:         title,
				Category:     "Static Collection",
				Alcoholic:    "Alcoholic",
				Glass:        glass,
				Instructions: instructions,
				Thumbnail:    fallbackThumbnail,
				ImageSource:  "Open Collection",
				Ingredients:  slots,
			})
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// parseIngredientPairs extracts the ['measure', 'ingredient'] tuples of the
// collection's stringified ingredient column.
func parseIngredientPairs(raw string) model.SlotList {
	matches := ingredientPair.FindAllStringSubmatch(raw, model.MaxIngredientSlots)
	slots := make(model.SlotList, 0, len(matches))
	for _, match := range matches {
		name := strings.TrimSpace(match[2])
		if name == "" {
			continue
		}
		slots = append(slots, model.IngredientSlot{
			Name:    name,
			Measure: strings.TrimSpace(match[1]),
		})
	}
	return slots
}

func isAlcoholic(slots model.SlotList) bool {
	for _, slot := range slots {
		if ingredient.IsAlcoholic(ingredient.Normalize(slot.Name)) {
			return true
		}
	}
	return false
}

// fillDefaults papers over the gaps in upstream records the way the app
// expects them.
func fillDefaults(cocktail model.Cocktail) model.Cocktail {
	if cocktail.Category == "" {
		cocktail.Category = "CocktailDB"
	}
	if cocktail.Alcoholic == "" {
		cocktail.Alcoholic = "Alcoholic"
	}
	if cocktail.Glass == "" {
		cocktail.Glass = "Cocktail glass"
	}
	if cocktail.Thumbnail == "" {
		cocktail.Thumbnail = fallbackThumbnail
	}
	return cocktail
}

// dedupeByName keeps the first recipe per normalized display name.
func dedupeByName(recipes []model.Cocktail) []model.Cocktail {
	seen := make(map[string]struct{}, len(recipes))
	result := make([]model.Cocktail, 0, len(recipes))
	for i := range recipes {
		key := ingredient.NormalizeName(recipes[i].Name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, recipes[i])
	}
	return result
}

func uploadDataset(ctx context.Context, cfg *config.Config, payload []byte) error {
	s3Cfg, err := cfg.NewS3Config(ctx)
	if err != nil {
		return err
	}
	if s3Cfg == nil {
		return fmt.Errorf("DATASET_S3_BUCKET is not configured")
	}
	_, err = s3Cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s3Cfg.BucketName),
		Key:         aws.String(s3Cfg.ObjectKey),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	return err
}
