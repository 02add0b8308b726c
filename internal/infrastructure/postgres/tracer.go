package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-backend/pkg/logger"
)

type queryStartKey struct{}

// QueryTracer registra latencia y cantidad de filas de cada sentencia que
// pasa por el pool. Los errores se registran con la sentencia que falló;
// el error en sí se propaga sin modificar al repositorio que la ejecutó.
type QueryTracer struct {
	log *logger.Logger
}

// NewQueryTracer construye el tracer sobre el logger de la app.
func NewQueryTracer(log *logger.Logger) *QueryTracer {
	return &QueryTracer{log: log}
}

// TraceQueryStart guarda el instante de inicio en el contexto.
func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, time.Now())
}

// TraceQueryEnd emite la traza con duración y filas afectadas/devueltas.
func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	var elapsed time.Duration
	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		elapsed = time.Since(start)
	}
	if data.Err != nil {
		t.log.Error().
			Err(data.Err).
			Dur("duration", elapsed).
			Msg("consulta SQL falló")
		return
	}
	t.log.Debug().
		Dur("duration", elapsed).
		Int64("rows", data.CommandTag.RowsAffected()).
		Msg("consulta SQL ejecutada")
}
