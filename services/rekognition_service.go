package services

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService implements VisionCapability with AWS Rekognition:
// DetectText for printed text on the can or bottle, DetectLabels for what
// the image shows.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

func (r *RekognitionService) Recognize(ctx context.Context, image []byte) (*VisionResult, error) {
	img := &types.Image{Bytes: image}

	textOut, err := r.client.DetectText(ctx, &rekognition.DetectTextInput{Image: img})
	if err != nil {
		return nil, err
	}

	labelOut, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         img,
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var parts []string
	for _, t := range textOut.TextDetections {
		// LINE detections already cover the WORD ones
		if t.Type == types.TextTypesLine && t.DetectedText != nil {
			parts = append(parts, *t.DetectedText)
		}
	}

	labels := make([]string, 0, len(labelOut.Labels))
	for _, l := range labelOut.Labels {
		if l.Name != nil {
			labels = append(labels, strings.ToLower(*l.Name))
		}
	}

	return &VisionResult{
		Text:   strings.ToLower(strings.Join(parts, "\n")),
		Labels: labels,
	}, nil
}
