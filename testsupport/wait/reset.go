package wait

import (
	"time"

	toolchainv1alpha1 "github.com/codeready-toolchain/api/api/v1alpha1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ResetTimeFields returns a copy of the conditions with their time fields cleared, so that
// they can be compared with conditions built in a test.
func ResetTimeFields(conditions []toolchainv1alpha1.Condition) []toolchainv1alpha1.Condition {
	if conditions == nil {
		return nil
	}
	result := make([]toolchainv1alpha1.Condition, len(conditions))
	for i, c := range conditions {
		c.LastTransitionTime = metav1.NewTime(time.Time{})
		c.LastUpdatedTime = nil
		result[i] = c
	}
	return result
}
