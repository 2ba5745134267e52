package sparql

import (
	"fmt"
	"strings"
)

// Namespace IRIs used across probe queries.
const (
	skosNamespace = "http://www.w3.org/2004/02/skos/core#"
	prefixes      = "PREFIX skos: <" + skosNamespace + ">\n"
)

// sampleGraphLimit bounds the fallback graph enumeration when an endpoint
// cannot answer COUNT(DISTINCT ?g). Hitting the limit means the reported
// count is a lower bound.
const sampleGraphLimit = 10000

// graphCountQuery counts distinct named graphs exactly.
const graphCountQuery = `SELECT (COUNT(DISTINCT ?g) AS ?n) WHERE { GRAPH ?g { ?s ?p ?o } }`

// graphSampleQuery enumerates named graphs up to a limit; used as a
// fallback for endpoints that reject the aggregate form.
func graphSampleQuery(limit int) string {
	return fmt.Sprintf(`SELECT DISTINCT ?g WHERE { GRAPH ?g { ?s ?p ?o } } LIMIT %d`, limit)
}

// vocabGraphsQuery enumerates graphs holding SKOS vocabulary data, bounded
// by limit so oversized endpoints can be detected without a full scan.
func vocabGraphsQuery(limit int) string {
	return prefixes + fmt.Sprintf(
		`SELECT DISTINCT ?g WHERE { GRAPH ?g { ?s a ?t . VALUES ?t { skos:ConceptScheme skos:Concept } } } LIMIT %d`, limit)
}

// vocabGraphCountQuery counts vocabulary graphs without enumerating them.
const vocabGraphCountQueryText = `SELECT (COUNT(DISTINCT ?g) AS ?n) WHERE { GRAPH ?g { ?s a ?t . VALUES ?t { skos:ConceptScheme skos:Concept } } }`

func vocabGraphCountQuery() string {
	return prefixes + vocabGraphCountQueryText
}

// duplicatesQuery asks whether any triple is asserted in two distinct graphs.
const duplicatesQuery = `ASK { GRAPH ?g1 { ?s ?p ?o } GRAPH ?g2 { ?s ?p ?o } FILTER(?g1 != ?g2) }`

// languagesQuery builds the label-language distribution query in one of
// three shapes: batched over known graph URIs, graph-scoped with distinct
// counting, or the default whole-dataset count.
func languagesQuery(scoped bool, uris []string) string {
	var b strings.Builder
	b.WriteString(prefixes)
	b.WriteString("SELECT ?lang (COUNT(?label) AS ?n) WHERE {\n")
	switch {
	case uris != nil:
		b.WriteString("  VALUES ?g { ")
		for _, u := range uris {
			b.WriteString("<")
			b.WriteString(u)
			b.WriteString("> ")
		}
		b.WriteString("}\n")
		b.WriteString("  GRAPH ?g { ?s skos:prefLabel ?label }\n")
	case scoped:
		b.WriteString("  { SELECT DISTINCT ?s ?label WHERE { GRAPH ?g { ?s skos:prefLabel ?label } } }\n")
	default:
		b.WriteString("  ?s skos:prefLabel ?label\n")
	}
	b.WriteString("  BIND(LANG(?label) AS ?lang)\n")
	b.WriteString("} GROUP BY ?lang ORDER BY DESC(?n)")
	return b.String()
}

// conceptLabelsQuery loads every SKOS label of one concept along with the
// predicate that asserted it.
func conceptLabelsQuery(conceptURI string) string {
	return prefixes + fmt.Sprintf(
		`SELECT ?p ?label WHERE { <%s> ?p ?label . VALUES ?p { skos:prefLabel skos:altLabel skos:hiddenLabel } }`,
		conceptURI)
}
