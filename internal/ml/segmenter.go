package ml

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sar-guardian/sar-landcover-poc/internal/ml/protobufs"
	"github.com/sar-guardian/sar-landcover-poc/internal/preprocess"
)

// Segmenter is the model boundary: a normalized two-channel image tensor in,
// per-pixel class logits out. The production implementation talks to the
// model server over gRPC; tests substitute their own.
type Segmenter interface {
	Segment(ctx context.Context, vh, vv []float64, width, height int) (logits []float32, numClasses int, err error)
}

// Client runs a frozen model variant hosted by the segmentation server.
type Client struct {
	conn    *grpc.ClientConn
	client  protobufs.SegmentationServiceClient
	variant string
}

func NewClient(serverAddr, variant string) (*Client, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(64*1024*1024),
			grpc.MaxCallSendMsgSize(64*1024*1024),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to segmentation server: %w", err)
	}

	return &Client{
		conn:    conn,
		client:  protobufs.NewSegmentationServiceClient(conn),
		variant: variant,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// ValidateShape asks the server for the loaded weights' tensor shape and
// fails when it disagrees with the preprocessing descriptor. A mismatch here
// means the wrong weights are loaded for the variant; aborting before the
// first tile beats writing corrupted predictions.
func (c *Client) ValidateShape(ctx context.Context, desc preprocess.Descriptor) error {
	resp, err := c.client.GetModelInfo(ctx, &protobufs.ModelInfoRequest{Variant: c.variant})
	if err != nil {
		return fmt.Errorf("failed to query model info: %w", err)
	}
	if int(resp.Channels) != desc.Channels {
		return fmt.Errorf("model weight shape mismatch: model expects %d channels, descriptor %s declares %d",
			resp.Channels, desc.Variant, desc.Channels)
	}
	if int(resp.Classes) != desc.Classes {
		return fmt.Errorf("model weight shape mismatch: model outputs %d classes, descriptor %s declares %d",
			resp.Classes, desc.Variant, desc.Classes)
	}
	return nil
}

// Segment sends the stacked channels (VH plane then VV plane) and returns
// the class-major logit planes.
func (c *Client) Segment(ctx context.Context, vh, vv []float64, width, height int) ([]float32, int, error) {
	if len(vh) != width*height || len(vv) != width*height {
		return nil, 0, fmt.Errorf("channel size mismatch: %d and %d pixels for %dx%d tile", len(vh), len(vv), width, height)
	}

	pixels := make([]float32, 0, 2*width*height)
	for _, v := range vh {
		pixels = append(pixels, float32(v))
	}
	for _, v := range vv {
		pixels = append(pixels, float32(v))
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	resp, err := c.client.Segment(ctx, &protobufs.SegmentRequest{
		Variant:  c.variant,
		Width:    int32(width),
		Height:   int32(height),
		Channels: 2,
		Pixels:   pixels,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("error calling Segment: %w", err)
	}

	if int(resp.Width) != width || int(resp.Height) != height {
		return nil, 0, fmt.Errorf("model returned %dx%d logits for a %dx%d tile", resp.Width, resp.Height, width, height)
	}
	if len(resp.Logits) != int(resp.Classes)*width*height {
		return nil, 0, fmt.Errorf("model returned %d logits, expected %d", len(resp.Logits), int(resp.Classes)*width*height)
	}

	return resp.Logits, int(resp.Classes), nil
}

// Argmax collapses class-major logit planes into a per-pixel dense class
// index grid.
func Argmax(logits []float32, numClasses, width, height int) []int {
	pixels := width * height
	out := make([]int, pixels)
	for i := 0; i < pixels; i++ {
		best := 0
		bestVal := logits[i]
		for c := 1; c < numClasses; c++ {
			if v := logits[c*pixels+i]; v > bestVal {
				bestVal = v
				best = c
			}
		}
		out[i] = best
	}
	return out
}
