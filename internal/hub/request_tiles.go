package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/sar-guardian/sar-landcover-poc/internal/cache"
)

const processURL = "https://sh.dataspace.copernicus.eu/api/v1/process"

// Sentinel-1 GRD evalscript producing the three planes the pipeline
// consumes: VH amplitude, VV amplitude and local incidence angle in degrees.
const evalscript = `
//VERSION=3
function setup() {
  return {
    input: ["VH", "VV", "localIncidenceAngle"],
    output: {
      id: "default",
      bands: 3,
      sampleType: SampleType.FLOAT32,
    },
  }
}

function evaluatePixel(sample) {
  return [sample.VH, sample.VV, sample.localIncidenceAngle];
}
`

// BBox is a WGS84 bounding box: [minLon, minLat, maxLon, maxLat].
type BBox [4]float64

// RequestTile downloads one Sentinel-1 GRD tile covering the bounding box
// for the most recent acquisition in the date range. The response is a
// three-band float32 GeoTIFF matching the evalscript above. Responses are
// cached under data/hub_cache keyed by the request parameters.
func RequestTile(startDate, endDate time.Time, bbox BBox, widthPixels, heightPixels int) ([]byte, error) {
	tileCache := cache.NewFileCache[[]byte]("hub_cache")
	cacheKey := tileCache.GenerateKey(startDate.Format("2006-01-02"), endDate.Format("2006-01-02"), bbox, widthPixels, heightPixels)
	if data, ok := tileCache.Get(cacheKey); ok {
		return data, nil
	}

	if widthPixels > 2500 {
		widthPixels = 2500
	}
	if heightPixels > 2500 {
		heightPixels = 2500
	}

	requestPayload := map[string]interface{}{
		"input": map[string]interface{}{
			"bounds": map[string]interface{}{
				"bbox": []float64{bbox[0], bbox[1], bbox[2], bbox[3]},
			},
			"data": []map[string]interface{}{
				{
					"dataFilter": map[string]interface{}{
						"timeRange": map[string]string{
							"from": startDate.Format(time.RFC3339),
							"to":   endDate.Format(time.RFC3339),
						},
						"acquisitionMode": "IW",
						"polarization":    "DV",
					},
					"processing": map[string]string{
						"orthorectify": "true",
					},
					"type": "sentinel-1-grd",
				},
			},
		},
		"output": map[string]interface{}{
			"width":  widthPixels,
			"height": heightPixels,
			"responses": []map[string]interface{}{
				{
					"identifier": "default",
					"format": map[string]string{
						"type": "image/tiff",
					},
				},
			},
		},
		"evalscript": evalscript,
		"mosaicking": "mostRecent",
	}

	requestBody, err := json.Marshal(requestPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %v", err)
	}

	clientID := os.Getenv("COPERNICUS_CLIENT_ID")
	clientSecret := os.Getenv("COPERNICUS_CLIENT_SECRET")
	tokenURL := os.Getenv("COPERNICUS_TOKEN_URL")
	if clientID == "" || clientSecret == "" || tokenURL == "" {
		return nil, fmt.Errorf("missing required environment variables: COPERNICUS_CLIENT_ID, COPERNICUS_CLIENT_SECRET, or COPERNICUS_TOKEN_URL")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	httpClient := config.Client(context.Background())

	retries := 5
	var responseContent []byte
	for attempt := 1; attempt <= retries; attempt++ {
		response, err := httpClient.Post(processURL, "application/json", bytes.NewBuffer(requestBody))
		if err != nil {
			fmt.Printf("Attempt %d failed: %v\n", attempt, err)
			time.Sleep(5 * time.Second)
			continue
		}

		body, readErr := io.ReadAll(response.Body)
		response.Body.Close()
		if readErr != nil {
			fmt.Printf("Attempt %d failed: %v\n", attempt, readErr)
			time.Sleep(5 * time.Second)
			continue
		}

		if response.StatusCode == http.StatusForbidden || response.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("unauthorized access, check your client ID and secret")
		}
		if response.StatusCode != http.StatusOK {
			fmt.Printf("Attempt %d failed: %s\n", attempt, string(body))
			time.Sleep(5 * time.Second)
			continue
		}

		responseContent = body
		break
	}

	if responseContent == nil {
		return nil, fmt.Errorf("failed to request tile after %d attempts", retries)
	}

	if err := tileCache.Set(cacheKey, responseContent); err != nil {
		fmt.Printf("Warning: failed to cache tile response: %v\n", err)
	}
	return responseContent, nil
}

// DownloadTile fetches a tile and writes it into the given directory with a
// deterministic name derived from the date range.
func DownloadTile(dir string, startDate, endDate time.Time, bbox BBox, widthPixels, heightPixels int) (string, error) {
	data, err := RequestTile(startDate, endDate, bbox, widthPixels, heightPixels)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	name := fmt.Sprintf("s1grd_%s_%s.tif", startDate.Format("20060102"), endDate.Format("20060102"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write downloaded tile: %w", err)
	}
	return path, nil
}
