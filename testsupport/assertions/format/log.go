package format

import "k8s.io/klog/v2"

var logger = klog.Background().WithName("assertions-format")
