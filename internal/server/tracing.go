// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package server

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/jaythomasv29/tablego-sub001/internal/server")
