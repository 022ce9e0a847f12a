package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"

	"debatecoach/config"
)

var speechClient *speech.Client
var speechLanguageCode string

var (
	// ErrUnrecognizedSpeech indicates recognition produced no usable transcript.
	ErrUnrecognizedSpeech = errors.New("could not understand audio")
	// ErrServiceUnavailable indicates the recognition API could not be reached.
	ErrServiceUnavailable = errors.New("speech recognition service unavailable")
)

// InitSpeechService initializes the Google Cloud Speech-to-Text client.
// With no credentials file configured, the client falls back to
// GOOGLE_APPLICATION_CREDENTIALS.
func InitSpeechService(cfg *config.Config) error {
	var opts []option.ClientOption
	if cfg.Speech.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Speech.CredentialsFile))
	}

	client, err := speech.NewClient(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("failed to create speech client: %w", err)
	}
	speechClient = client
	speechLanguageCode = cfg.Speech.LanguageCode
	return nil
}

// Transcribe converts one audio payload to text. Defaults assume
// LINEAR16 WAV at 16 kHz, the format the frontend records in.
func Transcribe(ctx context.Context, audio []byte) (string, error) {
	if speechClient == nil {
		return "", errors.New("speech client not initialized")
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:            16000,
			LanguageCode:               speechLanguageCode,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := speechClient.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	transcript := joinTranscripts(resp)
	if transcript == "" {
		return "", ErrUnrecognizedSpeech
	}
	return transcript, nil
}

// joinTranscripts concatenates the top alternative of each result.
func joinTranscripts(resp *speechpb.RecognizeResponse) string {
	var sb strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(result.Alternatives[0].Transcript)
	}
	return strings.TrimSpace(sb.String())
}
