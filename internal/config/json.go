package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON configs can use human-readable
// values like "15s" or "1m".
type Duration time.Duration

// UnmarshalJSON accepts either a duration string ("30s") or a bare number
// of nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := time.ParseDuration(asString)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", asString, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var asNumber int64
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return fmt.Errorf("error parsing duration: %w", err)
	}
	*d = Duration(asNumber)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	App struct {
		Debug          bool     `json:"debug"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"app,omitempty"`

	Endpoints struct {
		RecordLogin      string `json:"login"`
		CategoriesAll    string `json:"categories_all"`
		CategoriesCreate string `json:"categories_create"`
		CategoriesDelete string `json:"categories_delete"`
		ImagesAll        string `json:"images_all"`
		ImagesAddLink    string `json:"images_add_link"`
		ImagesAddBlob    string `json:"images_add_blob"`
		ImagesDelete     string `json:"images_delete"`
		TagsAll          string `json:"tags_all"`
		TagsCreate       string `json:"tags_create"`
		TagsDelete       string `json:"tags_delete"`
	} `json:"endpoints,omitempty"`

	OAuth struct {
		GoogleClientID     string `json:"google_client_id"`
		GoogleClientSecret string `json:"google_client_secret"`
		RedirectURL        string `json:"redirect_url"`
	} `json:"oauth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Debug:          jsonCfg.App.Debug,
			RequestTimeout: time.Duration(jsonCfg.App.RequestTimeout),
		},
		Endpoints: Endpoints{
			RecordLogin:      jsonCfg.Endpoints.RecordLogin,
			CategoriesAll:    jsonCfg.Endpoints.CategoriesAll,
			CategoriesCreate: jsonCfg.Endpoints.CategoriesCreate,
			CategoriesDelete: jsonCfg.Endpoints.CategoriesDelete,
			ImagesAll:        jsonCfg.Endpoints.ImagesAll,
			ImagesAddLink:    jsonCfg.Endpoints.ImagesAddLink,
			ImagesAddBlob:    jsonCfg.Endpoints.ImagesAddBlob,
			ImagesDelete:     jsonCfg.Endpoints.ImagesDelete,
			TagsAll:          jsonCfg.Endpoints.TagsAll,
			TagsCreate:       jsonCfg.Endpoints.TagsCreate,
			TagsDelete:       jsonCfg.Endpoints.TagsDelete,
		},
		OAuth: OAuth{
			GoogleClientID:     jsonCfg.OAuth.GoogleClientID,
			GoogleClientSecret: jsonCfg.OAuth.GoogleClientSecret,
			RedirectURL:        jsonCfg.OAuth.RedirectURL,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
	}

	return cfg, nil
}
