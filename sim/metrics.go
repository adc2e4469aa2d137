package sim

import (
	"fmt"
	"io"
)

// Report writes the per-station statistics table to w, in the exact format
// this format: a header line, then per station a blank line, an
// "ESTACION: <name>" line, a fixed six-column header, and one data row of
// service/response/queue time in milliseconds, total clients, throughput per
// millisecond, and utilization.
//
// Stations with zero TotalClients are skipped (service/response time are
// undefined divided by zero); this is a direct, idiomatic guard the C
// reference does not need only because dividing by a zero long long there is
// undefined behavior rather than a panic.
func (k *Kernel) Report(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "RESULTADOS DE LA SIMULACIÓN")
	k.Registry.ForEach(func(st *Station) {
		if st.TotalClients == 0 {
			return
		}
		servMs := float64(st.TotalServiceTime) / float64(st.TotalClients) / 1e6
		respMs := float64(st.TotalResponseTime) / float64(st.TotalClients) / 1e6
		queueMs := respMs - servMs
		elapsedNs := k.Clock - k.LastResetTime
		throughputPerMs := float64(st.TotalClients) / float64(elapsedNs) * 1e6
		utilization := throughputPerMs * servMs

		fmt.Fprintln(w)
		fmt.Fprintf(w, "ESTACION: %s\n", st.Name)
		fmt.Fprintln(w, "Tiempo de servicio    Tiempo de respuesta   Tiempo en cola        Total clientes        Productividad         Utilización")
		fmt.Fprintf(w, "%-20.4f  %-20.4f  %-20.4f  %-20d  %-20.4f  %-20.4f\n",
			servMs, respMs, queueMs, st.TotalClients, throughputPerMs, utilization)
		fmt.Fprintln(w)
	})
}
