// Package grpc maps the core error taxonomy onto gRPC status errors for
// hosts that put the library behind a gRPC service.
//
//	func (s *server) Add(ctx context.Context, req *pb.AddRequest) (*pb.Value, error) {
//	    if err := s.calc.Add(req.X); err != nil {
//	        return nil, coregrpc.DefaultErrorHandler(err)
//	    }
//	    return &pb.Value{V: s.calc.Value()}, nil
//	}
//
// Status codes:
//   - calculator.ErrOverflow: OutOfRange
//   - calculator.ErrDivisionByZero: InvalidArgument
//   - jwtdecode.ErrInvalidFormat, ErrBase64, ErrJSON: InvalidArgument
//   - binding.ErrInvalidHandle: NotFound
//   - anything else: Internal
package grpc
