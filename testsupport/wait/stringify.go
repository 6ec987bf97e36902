package wait

import (
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"
)

// StringifyObject renders the object as YAML, without its managed fields.
func StringifyObject(obj runtime.Object) ([]byte, error) {
	obj = obj.DeepCopyObject()
	m, err := meta.Accessor(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot access the metadata of %T", obj)
	}
	m.SetManagedFields(nil)
	out, err := yaml.Marshal(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot render %T as YAML", obj)
	}
	return out, nil
}
