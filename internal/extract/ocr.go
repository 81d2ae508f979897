package extract

import (
	"context"
	"errors"
	"fmt"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// OCRText runs Google Vision text detection over the uploaded image and
// returns the full detected text block.
func OCRText(ctx context.Context, image []byte) (string, error) {
	credPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	var client *vision.ImageAnnotatorClient
	var err error
	if credPath != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credPath))
	} else {
		client, err = vision.NewImageAnnotatorClient(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("failed to init OCR client: %w", err)
	}
	defer client.Close()

	img := &visionpb.Image{Content: image}
	anns, err := client.DetectTexts(ctx, img, nil, 1)
	if err != nil {
		return "", fmt.Errorf("could not extract text from image: %w", err)
	}
	if len(anns) == 0 || anns[0].Description == "" {
		return "", errors.New("no text found in image")
	}
	return anns[0].Description, nil
}
