// Package serializer encodes resolver output and decodes seed datasets.
//
// Writers support JSON, YAML and a flat table view. Values implementing
// TableRenderer control their own table rows; anything else is flattened
// into dotted key/value pairs.
//
// Sources and destinations are addressed by path:
//
//	-                       stdout
//	results.yaml            file, format taken from the extension
//	https://host/seed.json  HTTP(S), read only
//	cm://namespace/name     Kubernetes ConfigMap
//
// Example:
//
//	ds, err := serializer.FromFileWithKubeconfig[model.Dataset](ctx, "cm://ops/seed", "")
//	if err != nil {
//	    return err
//	}
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatTable, "-")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	return w.Serialize(ctx, result)
package serializer
