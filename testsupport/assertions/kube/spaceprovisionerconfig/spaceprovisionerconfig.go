package spaceprovisionerconfig

import (
	toolchainv1alpha1 "github.com/codeready-toolchain/api/api/v1alpha1"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/kube"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/kube/conditions"
	"github.com/codeready-toolchain/toolchain-common/pkg/condition"
	corev1 "k8s.io/api/core/v1"
)

type Assert struct {
	kube.Metadata[Assert, *toolchainv1alpha1.SpaceProvisionerConfig]
}

func init() {
	assertions.RegisterConstructor(New)
}

func New(spc *toolchainv1alpha1.SpaceProvisionerConfig) *Assert {
	a := &Assert{}
	a.WireUp(a, spc)
	return a
}

func That(t assertions.AssertT, spc *toolchainv1alpha1.SpaceProvisionerConfig) *Assert {
	return assertions.Bind(t, New(spc))
}

func (a *Assert) ReferencesToolchainCluster(name string) *Assert {
	a.T().Helper()
	return a.Check(func(spc *toolchainv1alpha1.SpaceProvisionerConfig) error {
		if spc.Spec.ToolchainCluster == name {
			return nil
		}
		return assertions.Failf("Expecting the SpaceProvisionerConfig %q to reference the ToolchainCluster:\n  %q\nbut was referencing:\n  %q", spc.Name, name, spc.Spec.ToolchainCluster)
	})
}

func (a *Assert) IsReady() *Assert {
	a.T().Helper()
	return a.Check(func(spc *toolchainv1alpha1.SpaceProvisionerConfig) error {
		if cond, found := condition.FindConditionByType(spc.Status.Conditions, toolchainv1alpha1.ConditionReady); found && cond.Status == corev1.ConditionTrue {
			return nil
		}
		return assertions.Failf("Expecting the SpaceProvisionerConfig %q to be ready", spc.Name)
	})
}

// Conditions returns the wrapper of the conditions of the SpaceProvisionerConfig, bound to the
// same T. A nil SpaceProvisionerConfig has no conditions.
func (a *Assert) Conditions() *conditions.Assert {
	var conds []toolchainv1alpha1.Condition
	if spc := a.Actual(); spc != nil {
		conds = spc.Status.Conditions
	}
	return assertions.Derive(a, conditions.New(conds))
}
