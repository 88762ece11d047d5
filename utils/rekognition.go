package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

var rekClient *rekognition.Client

// must be called once at startup (e.g. in main.go)
func InitRekognition() {
	awsRegion := os.Getenv("AWS_REGION")
	if awsRegion == "" {
		log.Fatal("AWS_REGION not set")
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		log.Fatalf("unable to load AWS config: %v", err)
	}
	rekClient = rekognition.NewFromConfig(cfg)
}

// ModerateImage screens profile picture bytes for unsafe content and returns
// the offending label names, if any. An unconfigured client skips moderation
// so local setups without AWS still work.
func ModerateImage(data []byte) ([]string, error) {
	if rekClient == nil {
		return nil, nil
	}

	out, err := rekClient.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: data},
		MinConfidence: aws.Float32(80),
	})
	if err != nil {
		return nil, fmt.Errorf("moderation check failed: %w", err)
	}

	var labels []string
	for _, l := range out.ModerationLabels {
		if l.Name != nil {
			labels = append(labels, *l.Name)
		}
	}
	return labels, nil
}
