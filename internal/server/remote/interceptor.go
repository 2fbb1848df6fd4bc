package remote

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/logging"
)

// loggingStreamInterceptor logs stream setup failures and, at debug level,
// how long opening each stream took.
func loggingStreamInterceptor(l logging.Logger) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		start := time.Now()
		s, err := streamer(ctx, desc, cc, method, opts...)
		if err != nil {
			l.Warn(ctx, "stream open failed", "method", method, "error", err)
			return nil, err
		}
		l.Debug(ctx, "stream opened", "method", method, "took", time.Since(start))
		return s, nil
	}
}
